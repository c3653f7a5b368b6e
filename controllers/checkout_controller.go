package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/services"
	"github.com/lukeklipping/NourishBox/utils"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Summary is the cart screen payload: items with line totals plus
// subtotal, tax and total.
func (ct *CheckoutController) Summary(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	summary, err := ct.checkout.Summary(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to fetch cart summary.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Checkout validates the payment form (format only, nothing external is
// contacted), answers with the order summary and clears the cart. A 400
// carries one message per failing field.
func (ct *CheckoutController) Checkout(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var info utils.PaymentInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if fieldErrs := utils.ValidatePayment(info); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	order, err := ct.checkout.Checkout(c.Request.Context(), id, info)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty."})
		return
	}
	if err != nil {
		serverError(c, err, "Checkout failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment successful", "order": order})
}
