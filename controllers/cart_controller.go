package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func (ct *CartController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	cart, err := ct.carts.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to fetch user cart.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

type addCartItemInput struct {
	CartItem *models.CartItem `json:"cartItem"`
}

// AddItem merges one item into the cart by title and returns the refreshed
// user.
func (ct *CartController) AddItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var input addCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil || input.CartItem == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item"})
		return
	}

	user, err := ct.carts.AddItem(c.Request.Context(), id, *input.CartItem)
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item"})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "user": user})
}

type updateQuantityInput struct {
	Quantity *int64 `json:"quantity" binding:"required"`
}

// UpdateQuantity sets one item's quantity; zero or less removes the item.
func (ct *CartController) UpdateQuantity(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var input updateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity is required"})
		return
	}

	err = ct.carts.UpdateQuantity(c.Request.Context(), id, itemID, *input.Quantity)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User or meal not found."})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to update cart.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveItem pulls one item from the cart. An id that is not in the cart
// is a quiet no-op; only a missing user is an error.
func (ct *CartController) RemoveItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	err = ct.carts.RemoveItem(c.Request.Context(), id, itemID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to remove item from cart.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart."})
}

func (ct *CartController) Clear(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	err = ct.carts.Clear(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to clear cart.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
