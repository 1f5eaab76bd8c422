package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/junaidrashid-git/storefront-api/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authControllers.Login(deps.Sessions))
		authGroup.POST("/signup", authControllers.Signup(deps.Sessions))
	}
}
