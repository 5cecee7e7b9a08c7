package routes

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/01moynul/storefront/internal/handlers"
	"github.com/01moynul/storefront/internal/middleware"
	"github.com/01moynul/storefront/web"
)

// Options tune the router for a deployment.
type Options struct {
	AllowedOrigins []string // nil = any origin
	Development    bool
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	if !opts.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = false

	// --- Middleware chain (order matters) ---
	router.Use(gin.CustomRecovery(handlers.Recovery))
	router.Use(middleware.RequestID())
	router.Use(gin.LoggerWithFormatter(logLine))
	router.Use(middleware.SecurityHeaders())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.CORSMiddleware(opts.AllowedOrigins))

	// --- Health ---
	router.GET("/health", h.Health)

	// --- Catalog API (read-only, public) ---
	api := router.Group("/api")
	{
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.GetAllCategories)
	}

	// --- Storefront ---
	router.GET("/", serveIndex)
	router.StaticFS("/static", web.Assets())

	router.NoRoute(handlers.NotFound)

	return router
}

func serveIndex(c *gin.Context) {
	page, err := web.IndexHTML()
	if err != nil {
		log.Printf("Error reading storefront page: %v", err)
		handlers.NotFound(c)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func logLine(p gin.LogFormatterParams) string {
	requestID, _ := p.Keys[middleware.RequestIDKey].(string)
	return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %s | %s\n",
		p.TimeStamp.Format(time.RFC3339),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		p.Path,
		requestID,
	)
}
