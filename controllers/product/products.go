package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/models"
)

// GetProducts returns the catalog product list. A failed upstream fetch
// degrades to an empty list; the failure is only logged.
// URL: GET /products
func GetProducts(products *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.Products(c.Request.Context())
		if err != nil || list == nil {
			list = []models.Product{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetProductByID returns a single catalog product.
// URL param: /products/:id
func GetProductByID(products *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := products.Product(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
