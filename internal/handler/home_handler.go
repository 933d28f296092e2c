package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHomeRoutes registers the token-protected home route.
func RegisterHomeRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/home", authMW, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "welcome to home page",
		})
	})
}
