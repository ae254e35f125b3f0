package infrastructure

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout/application"
	"storefront/internal/checkout/domain"
	"storefront/pkg/errors"
	"storefront/pkg/middleware"
)

// HTTPHandler handles HTTP requests for checkout
type HTTPHandler struct {
	useCase *application.CheckoutUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.CheckoutUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the checkout routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/checkout/validate", h.Validate)
}

// AddressRequest is the selected delivery address in the request body
type AddressRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	District string  `json:"district"`
	Street   string  `json:"street"`
	Building string  `json:"building"`
}

// ValidateRequest is the request body for checkout validation
type ValidateRequest struct {
	CustomerID    uint            `json:"customer_id" binding:"required"`
	Address       *AddressRequest `json:"address"`
	ShiftID       string          `json:"shift_id"`
	PaymentMethod string          `json:"payment_method"`
	ItemsCount    int             `json:"items_count"`
}

// Validate handles POST /checkout/validate
func (h *HTTPHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	var address *domain.Address
	if req.Address != nil {
		address = &domain.Address{
			Lat:      req.Address.Lat,
			Lng:      req.Address.Lng,
			District: req.Address.District,
			Street:   req.Address.Street,
			Building: req.Address.Building,
		}
	}

	output, err := h.useCase.Validate(c.Request.Context(), application.ValidateInput{
		CustomerID:    req.CustomerID,
		Address:       address,
		ShiftID:       req.ShiftID,
		PaymentMethod: req.PaymentMethod,
		ItemsCount:    req.ItemsCount,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     output.Result,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}
