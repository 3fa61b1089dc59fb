package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
	"github.com/sel3a/sel3a/internal/server/http/dto"
	"github.com/sel3a/sel3a/internal/usecase"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	id, err := h.facade.CreateCustomer(c.Request.Context(), usecase.CreateCustomerRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.facade.Customer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	onlyActive := c.Query("all") != "true"
	customers, err := h.facade.Customers(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		resp = append(resp, toCustomerResponse(cust))
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateCustomer(c.Request.Context(), c.Param("id"), repository.CustomerUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetActive handles PATCH /api/customers/:id/active.
func (h *CustomerHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetCustomerActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetStatus handles PATCH /api/customers/:id/status.
func (h *CustomerHandler) SetStatus(c *gin.Context) {
	var req dto.SetClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetCustomerStatus(c.Request.Context(), c.Param("id"), model.ClientStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
