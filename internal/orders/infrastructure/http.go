package infrastructure

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/orders/application"
	"storefront/internal/orders/domain"
	"storefront/pkg/errors"
	"storefront/pkg/middleware"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	useCase *application.OrderUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.OrderUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the order routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/status", h.ChangeStatus)
	}
	r.GET("/customers/:id/orders", h.ListByCustomer)
}

// CreateOrderRequest is the request body for creating an order
type CreateOrderRequest struct {
	CustomerID uint    `json:"customer_id" binding:"required"`
	Total      float64 `json:"total" binding:"required,gt=0"`
}

// ChangeStatusRequest is the request body for a status transition
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// OrderResponse is the response body for order reads
type OrderResponse struct {
	ID         uint    `json:"id"`
	CustomerID uint    `json:"customer_id"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
	CancelNote string  `json:"cancel_note,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ChangeStatusResponse is the response body for status transitions
type ChangeStatusResponse struct {
	OrderID          uint   `json:"order_id"`
	OldStatus        string `json:"old_status"`
	NewStatus        string `json:"new_status"`
	UpdatedAt        string `json:"updated_at"`
	NotificationSent bool   `json:"notification_sent"`
}

// CreateOrder handles POST /orders
func (h *HTTPHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.CreateOrder(c.Request.Context(), application.CreateOrderInput{
		CustomerID: req.CustomerID,
		Total:      req.Total,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     toOrderResponse(output.Order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetOrder handles GET /orders/:id
func (h *HTTPHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	output, err := h.useCase.GetOrder(c.Request.Context(), application.GetOrderInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toOrderResponse(output.Order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ChangeStatus handles PATCH /orders/:id/status
func (h *HTTPHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.ChangeStatus(c.Request.Context(), application.ChangeStatusInput{
		OrderID: id,
		Status:  domain.OrderStatus(req.Status),
		Note:    req.Note,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ChangeStatusResponse{
			OrderID:          output.OrderID,
			OldStatus:        string(output.OldStatus),
			NewStatus:        string(output.NewStatus),
			UpdatedAt:        output.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
			NotificationSent: output.NotificationSent,
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ListByCustomer handles GET /customers/:id/orders
func (h *HTTPHandler) ListByCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	output, err := h.useCase.ListByCustomer(c.Request.Context(), application.ListByCustomerInput{
		CustomerID: id,
	})
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]OrderResponse, len(output.Orders))
	for i, order := range output.Orders {
		responses[i] = toOrderResponse(order)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     responses,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

func toOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		Status:     string(order.Status),
		CancelNote: order.CancelNote,
		CreatedAt:  order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("invalid id", nil))
		return 0, false
	}
	return uint(id), true
}
