package infrastructure

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart/application"
	"storefront/pkg/middleware"
)

// HTTPHandler handles HTTP requests for cart maintenance
type HTTPHandler struct {
	reconciler *application.Reconciler
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(reconciler *application.Reconciler) *HTTPHandler {
	return &HTTPHandler{reconciler: reconciler}
}

// RegisterRoutes registers the cart maintenance routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	carts := r.Group("/carts")
	{
		carts.POST("/reconcile", h.Reconcile)
		carts.GET("/health", h.Health)
	}
}

// Reconcile handles POST /carts/reconcile
func (h *HTTPHandler) Reconcile(c *gin.Context) {
	report, err := h.reconciler.Cleanup(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     report,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// Health handles GET /carts/health
func (h *HTTPHandler) Health(c *gin.Context) {
	stats, err := h.reconciler.Health(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     stats,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}
