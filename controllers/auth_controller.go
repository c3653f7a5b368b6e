package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukeklipping/NourishBox/services"
	"github.com/lukeklipping/NourishBox/utils"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates the account and hands back a session token alongside the
// user. The stored credential is a bcrypt hash and is never serialized.
func (ct *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	user, err := ct.users.Signup(c.Request.Context(), input.Name, input.Email, input.Password)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists."})
		return
	}
	if err != nil {
		serverError(c, err, "Signup failed.")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		serverError(c, err, "Signup failed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user, "token": token})
}

func (ct *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	user, err := ct.users.Login(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, services.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}
	if err != nil {
		serverError(c, err, "Login failed.")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		serverError(c, err, "Login failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user, "token": token})
}
