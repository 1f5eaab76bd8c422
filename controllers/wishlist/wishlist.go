package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/wishlist"
)

type wishlistInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

// POST /user/wishlist
func AddWishlistItem(wishlists *wishlist.Manager, products *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input wishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		wishlists.Add(*product)
		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// DELETE /user/wishlist/:product_id
func DeleteWishlistItem(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		wishlists.Remove(productID)
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// DELETE /user/wishlist
func ClearWishlist(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		wishlists.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}

// GET /user/wishlist
func GetWishlist(wishlists *wishlist.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlists.Items())
	}
}
