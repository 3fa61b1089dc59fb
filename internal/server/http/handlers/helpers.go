package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/server/http/dto"
)

// respondError maps domain errors onto HTTP status codes. Stock shortages
// carry the remaining quantity so the caller can adjust the order.
func respondError(c *gin.Context, err error) {
	var stockErr *domainErrors.InsufficientStockError
	var transitionErr *domainErrors.InvalidTransitionError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":      "insufficient stock",
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
			"requested":  stockErr.Requested,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "invalid status transition",
			"from":  transitionErr.From,
			"to":    transitionErr.To,
		})
	case errors.Is(err, domainErrors.ErrProductNotFound),
		errors.Is(err, domainErrors.ErrCustomerNotFound),
		errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Ref:         p.Ref,
		Description: p.Description,
		Price:       p.Price.String(),
		Quantity:    p.Quantity,
		Category:    p.Category,
		Supplier:    p.Supplier,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCustomerResponse(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		ClientStatus: string(c.ClientStatus),
		StatusLabel:  dto.ClientStatusLabel(c.ClientStatus),
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			Total:     line.Total().String(),
		})
	}
	return dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Lines:        lines,
		Status:       string(o.Status),
		StatusLabel:  dto.OrderStatusLabel(o.Status),
		TotalPrice:   o.TotalPrice.String(),
		OrderDate:    o.OrderDate,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
