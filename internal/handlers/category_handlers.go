package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/storefront/internal/models"
)

// GetAllCategories handles GET /api/categories (bare array, ordered by name).
func (h *Handlers) GetAllCategories(c *gin.Context) {
	if h.Store == nil {
		h.databaseUnavailable(c)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	categories, err := h.Store.ListCategories(ctx)
	if err != nil {
		h.queryFailed(c, "fetching categories", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}
