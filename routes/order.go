package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers the live order feed websocket.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	r.GET("/ws/orders", deps.OrderFeed.Handler)
}
