package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/storefront/internal/models"
)

// CatalogStore is the read surface the handlers need from the database.
type CatalogStore interface {
	ListActiveProducts(ctx context.Context) ([]models.Product, error)
	GetActiveProduct(ctx context.Context, id int64) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	Ping(ctx context.Context) error
}

// Info describes the running build for the health probe.
type Info struct {
	Version     string
	Environment string
	StartedAt   time.Time
}

// Handlers holds the dependencies shared by every handler.
// It is built once at startup and never reassigned.
type Handlers struct {
	Store          CatalogStore // nil when the service started without a database
	Info           Info
	RequestTimeout time.Duration
}

// New returns Handlers over store. Pass a nil store to run in database-unavailable mode.
func New(store CatalogStore, info Info, requestTimeout time.Duration) *Handlers {
	if info.StartedAt.IsZero() {
		info.StartedAt = time.Now()
	}
	return &Handlers{
		Store:          store,
		Info:           info,
		RequestTimeout: requestTimeout,
	}
}

// Error bodies shared across handlers.
const (
	msgDatabaseUnavailable = "Database not available"
	msgInternalError       = "Internal server error"
	msgProductNotFound     = "Product not found"
	msgEndpointNotFound    = "Endpoint not found"
)

// pingTimeout bounds the liveness probe made after a failed query.
const pingTimeout = time.Second

func (h *Handlers) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.RequestTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.RequestTimeout)
}

func (h *Handlers) databaseUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgDatabaseUnavailable})
}

// queryFailed logs err and answers 503 when the database is unreachable, 500 otherwise.
func (h *Handlers) queryFailed(c *gin.Context, what string, err error) {
	log.Printf("Error %s: %v", what, err)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), pingTimeout)
	defer cancel()
	if pingErr := h.Store.Ping(ctx); pingErr != nil {
		log.Printf("Database unreachable: %v", pingErr)
		h.databaseUnavailable(c)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}

// NotFound answers any route the router does not know.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": msgEndpointNotFound})
}

// Recovery turns a panic inside a handler into the generic 500 body.
func Recovery(c *gin.Context, recovered any) {
	log.Printf("Unhandled error: %v", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}
