package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneypot/moneypot/internal/middleware"
)

// getHome godoc
// @Summary Show the status of the server.
// @Description get the status of the server.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "moneypot ledger API v1"})
}

// registerHomeRoutes registers the root, health and metrics routes.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", middleware.MetricsHandler())
}
