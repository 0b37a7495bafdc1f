package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"wishlist/internal/logger"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

// Health godoc
// @Summary Health check
// @Tags    health
// @Success 200 {object} map[string]bool
// @Failure 503 {object} map[string]bool
// @Router  /health [get]
func Health(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				logger.L().Warn("health.db_unreachable", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": false})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "db": true})
	}
}
