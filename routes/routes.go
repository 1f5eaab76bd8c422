package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/cart"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/checkout"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/wishlist"
)

// Deps bundles the state containers the route handlers close over.
type Deps struct {
	Sessions  *session.Store
	Carts     *cart.Manager
	Wishlists *wishlist.Manager
	Recorder  *checkout.Recorder
	Catalog   *catalog.Client
	OrderFeed *orderControllers.Feed
}

// SetupRoutes is the single entry-point that wires up Auth, Product,
// User and Order route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog routes
	SetupProductRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Order feed websocket
	SetupOrderRoutes(r, deps)
}
