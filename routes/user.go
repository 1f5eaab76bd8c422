package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/junaidrashid-git/storefront-api/controllers/auth"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	wishlistControllers "github.com/junaidrashid-git/storefront-api/controllers/wishlist"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Session ────────────────
		userGroup.GET("/", authControllers.GetUser(deps.Sessions))       // GET /user/
		userGroup.POST("/logout", authControllers.Logout(deps.Sessions)) // POST /user/logout

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))                   // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(deps.Carts, deps.Catalog)) // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Carts))  // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Carts))              // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(deps.Wishlists))                      // GET /user/wishlist
			wishlistGroup.POST("/", wishlistControllers.AddWishlistItem(deps.Wishlists, deps.Catalog))   // POST /user/wishlist
			wishlistGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistItem(deps.Wishlists)) // DELETE /user/wishlist/:product_id
			wishlistGroup.DELETE("/", wishlistControllers.ClearWishlist(deps.Wishlists))                 // DELETE /user/wishlist
		}

		// ──────────────── Checkout + Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(deps.Recorder))                // POST /user/checkout
		userGroup.GET("/orders", orderControllers.ListOrders(deps.Recorder))                 // GET /user/orders
		userGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(deps.Recorder)) // GET /user/orders/export
	}
}
