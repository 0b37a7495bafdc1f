package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wishlist/internal/logger"
	"wishlist/internal/store"
)

// respondError maps store errors onto HTTP statuses. msg is what clients see
// for server-side failures.
func respondError(c *gin.Context, err error, msg string) {
	var (
		unknown   *store.UnknownProductsError
		notLoaded *store.FieldNotLoadedError
	)

	switch {
	case errors.Is(err, store.ErrEmptyResult):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, store.ErrInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	case errors.As(err, &unknown):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "unknown products", "item_ids": unknown.ItemIDs})
	case errors.As(err, &notLoaded):
		logger.L().Error("store.field_not_loaded", "entity", notLoaded.Entity, "field", notLoaded.Field, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msg})
	default:
		logger.L().Error("store.failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msg})
	}
}
