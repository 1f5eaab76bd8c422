package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/cart"
	"github.com/junaidrashid-git/storefront-api/catalog"
)

type cartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	// Quantity is a signed delta: positive to add, negative to remove.
	// Defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

// POST /user/cart
func UpdateCartItem(carts *cart.Manager, products *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		delta := 1
		if input.Quantity != nil {
			delta = *input.Quantity
		}

		// Validate the product against the catalog
		product, err := products.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		carts.Add(*product, delta)
		line, ok := carts.Line(product.ID)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		carts.Remove(productID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items":       carts.Items(),
			"total_price": carts.TotalPrice(),
			"total_items": carts.TotalItems(),
		})
	}
}
