package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/checkout"
	"github.com/junaidrashid-git/storefront-api/models"
)

// POST /user/checkout
func Checkout(recorder *checkout.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form checkout.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, fieldErrs, err := recorder.Submit(form)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNotAuthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login to place an order"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, checkout.ErrAlreadyPlaced):
				c.JSON(http.StatusConflict, gin.H{"error": "Order already placed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func ListOrders(recorder *checkout.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := recorder.Orders()
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "state": recorder.State()})
	}
}
