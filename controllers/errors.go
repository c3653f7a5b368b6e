package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// serverError logs the underlying failure and answers with a generic
// message; store and upstream details never reach the client.
func serverError(c *gin.Context, err error, msg string) {
	logrus.WithError(err).WithField("path", c.FullPath()).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
