package infrastructure

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/customers/application"
	"storefront/internal/customers/domain"
	"storefront/pkg/errors"
	"storefront/pkg/middleware"
)

// HTTPHandler handles HTTP requests for customers
type HTTPHandler struct {
	useCase *application.CustomerUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.CustomerUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the customer routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.POST("", h.Register)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("/:id/verify", h.Verify)
	}
}

// RegisterRequest is the request body for registering a customer
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CustomerResponse is the response body for customer operations
type CustomerResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
}

// Register handles POST /customers
func (h *HTTPHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.Register(c.Request.Context(), application.RegisterInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     toCustomerResponse(output.Customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetCustomer handles GET /customers/:id
func (h *HTTPHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	output, err := h.useCase.GetCustomer(c.Request.Context(), application.GetCustomerInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toCustomerResponse(output.Customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// Verify handles POST /customers/:id/verify
func (h *HTTPHandler) Verify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	output, err := h.useCase.Verify(c.Request.Context(), application.VerifyInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toCustomerResponse(output.Customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

func toCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Verified:  customer.Verified,
		CreatedAt: customer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("invalid customer id", nil))
		return 0, false
	}
	return uint(id), true
}
