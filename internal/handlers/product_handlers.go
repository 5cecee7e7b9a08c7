package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/storefront/internal/models"
)

// GetProducts handles GET /api/products.
// Every active product comes back as one page; there is no limit/offset.
func (h *Handlers) GetProducts(c *gin.Context) {
	if h.Store == nil {
		h.databaseUnavailable(c)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	products, err := h.Store.ListActiveProducts(ctx)
	if err != nil {
		h.queryFailed(c, "fetching products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, models.ProductList{
		Products:   products,
		Pagination: models.SinglePage(len(products)),
	})
}

// GetProduct handles GET /api/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	if h.Store == nil {
		h.databaseUnavailable(c)
		return
	}

	// An id that can never match a row is simply not found.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	product, err := h.Store.GetActiveProduct(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
			return
		}
		h.queryFailed(c, "fetching product", err)
		return
	}

	c.JSON(http.StatusOK, product)
}
