package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/server/http/dto"
	"github.com/sel3a/sel3a/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]usecase.OrderLineRequest, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecase.OrderLineRequest{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	ucReq := usecase.CreateOrderRequest{CustomerID: req.CustomerID, Lines: lines}
	if req.OrderDate != nil {
		ucReq.OrderDate = *req.OrderDate
	}

	id, err := h.facade.CreateOrder(c.Request.Context(), ucReq)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /api/orders with optional customer_id/status filters.
// Orders come back newest first unless sort=date_asc.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		CustomerID: c.Query("customer_id"),
		Status:     model.OrderStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.Status(http.StatusBadRequest)
		return
	}

	sort := model.OrderSortDateDesc
	if c.Query("sort") == string(model.OrderSortDateAsc) {
		sort = model.OrderSortDateAsc
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter, sort)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	status := model.OrderStatus(req.Status)
	if !status.Valid() {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/orders/:id. Deletion removes the record
// without returning reserved stock; cancel the order first when the goods
// should go back on the shelf.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
