package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sel3a/sel3a/internal/domain/repository"
	"github.com/sel3a/sel3a/internal/server/http/dto"
	"github.com/sel3a/sel3a/internal/usecase"
)

// ProductHandler manages catalog and stock endpoints.
type ProductHandler struct {
	catalog   CatalogFacade
	inventory InventoryFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(catalog CatalogFacade, inventory InventoryFacade) *ProductHandler {
	return &ProductHandler{catalog: catalog, inventory: inventory}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	id, err := h.catalog.CreateProduct(c.Request.Context(), usecase.CreateProductRequest{
		Name:        req.Name,
		Ref:         req.Ref,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Supplier:    req.Supplier,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// List handles GET /api/products. Inactive entries are included only when
// all=true is passed.
func (h *ProductHandler) List(c *gin.Context) {
	onlyActive := c.Query("all") != "true"
	products, err := h.catalog.Products(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), repository.ProductUpdate{
		Name:        req.Name,
		Ref:         req.Ref,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Supplier:    req.Supplier,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetActive handles PATCH /api/products/:id/active.
func (h *ProductHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.catalog.SetProductActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Stock handles GET /api/products/:id/stock.
func (h *ProductHandler) Stock(c *gin.Context) {
	id := c.Param("id")
	qty, err := h.inventory.ProductStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StockResponse{ProductID: id, Quantity: qty})
}

// Restock handles POST /api/products/:id/restock.
func (h *ProductHandler) Restock(c *gin.Context) {
	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.inventory.RestockProduct(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// LowStock handles GET /api/stock/low.
func (h *ProductHandler) LowStock(c *gin.Context) {
	threshold := 5
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	products, err := h.inventory.LowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}
