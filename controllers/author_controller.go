package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukeklipping/NourishBox/services"
)

type AuthorController struct {
	authors *services.AuthorService
}

func NewAuthorController(authors *services.AuthorService) *AuthorController {
	return &AuthorController{authors: authors}
}

func (ct *AuthorController) List(c *gin.Context) {
	authors, err := ct.authors.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to fetch authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}
