package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/money"
	"github.com/sel3a/sel3a/internal/server/http/dto"
	testhelpers "github.com/sel3a/sel3a/internal/test"
	"github.com/sel3a/sel3a/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	routePath := path
	if i := strings.Index(routePath, "?"); i >= 0 {
		routePath = routePath[:i]
	}
	router.Handle(method, routePath, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestAuthHandlerLogin(t *testing.T) {
	password := testhelpers.RandomASCIIString(16, 32)
	facade := testhelpers.StoreFacadeStub{LoginFn: func(gotPassword string) (string, error) {
		if gotPassword != password {
			t.Fatalf("unexpected password passed to facade: %q", gotPassword)
		}
		return "session-token", nil
	}}

	body, _ := json.Marshal(dto.LoginRequest{Password: password})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	var decoded dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Token != "session-token" {
		t.Fatalf("unexpected token in body: %q", decoded.Token)
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "sel3a_token" && cookie.Value == "session-token" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie named sel3a_token")
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.StoreFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "wrong password", body: []byte(`{"password":"bad"}`), facade: testhelpers.StoreFacadeStub{LoginFn: func(string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"password":"x"}`), facade: testhelpers.StoreFacadeStub{LoginFn: func(string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade).Login, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestProductHandlerCreate(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{CreateProductFn: func(_ context.Context, req usecase.CreateProductRequest) (string, error) {
		if req.Name != "laptop" || req.Price != "1500.00" {
			t.Fatalf("unexpected request passed to facade: %+v", req)
		}
		return "prod-1", nil
	}}

	body := []byte(`{"name":"laptop","price":"1500.00","quantity":10}`)
	resp := performRequest(t, http.MethodPost, "/products", NewProductHandler(facade, facade).Create, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.CreatedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != "prod-1" {
		t.Fatalf("unexpected id %q", decoded.ID)
	}
}

func TestProductHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.StoreFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "missing price", body: []byte(`{"name":"laptop"}`), status: http.StatusBadRequest},
		{name: "malformed price", body: []byte(`{"name":"laptop","price":"abc"}`), facade: testhelpers.StoreFacadeStub{CreateProductFn: func(context.Context, usecase.CreateProductRequest) (string, error) {
			return "", domainErrors.ErrInvalidAmount
		}}, status: http.StatusBadRequest},
		{name: "internal", body: []byte(`{"name":"laptop","price":"1.00"}`), facade: testhelpers.StoreFacadeStub{CreateProductFn: func(context.Context, usecase.CreateProductRequest) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/products", NewProductHandler(tt.facade, tt.facade).Create, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestProductHandlerGet(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{ProductFn: func(_ context.Context, id string) (*model.Product, error) {
		return &model.Product{ID: id, Name: "laptop", Price: money.MustParse("1500.00"), Quantity: 3, Active: true}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/products/p1", NewProductHandler(facade, facade).Get, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Price != "1500.00" || decoded.Quantity != 3 {
		t.Fatalf("unexpected product: %+v", decoded)
	}

	missing := testhelpers.StoreFacadeStub{ProductFn: func(context.Context, string) (*model.Product, error) {
		return nil, domainErrors.ErrProductNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/products/p1", NewProductHandler(missing, missing).Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestProductHandlerListPassesActivityFilter(t *testing.T) {
	var gotOnlyActive bool
	facade := testhelpers.StoreFacadeStub{ProductsFn: func(_ context.Context, onlyActive bool) ([]model.Product, error) {
		gotOnlyActive = onlyActive
		return nil, nil
	}}
	handler := NewProductHandler(facade, facade)

	performRequest(t, http.MethodGet, "/products", handler.List, nil, nil)
	if !gotOnlyActive {
		t.Fatal("default listing should be active only")
	}

	performRequest(t, http.MethodGet, "/products?all=true", handler.List, nil, nil)
	if gotOnlyActive {
		t.Fatal("all=true should include inactive products")
	}
}

func TestProductHandlerRestock(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{RestockProductFn: func(_ context.Context, id string, qty int) error {
		if qty != 7 {
			t.Fatalf("unexpected quantity %d", qty)
		}
		return nil
	}}
	resp := performRequest(t, http.MethodPost, "/products/p1/restock", NewProductHandler(facade, facade).Restock, []byte(`{"quantity":7}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	invalid := testhelpers.StoreFacadeStub{RestockProductFn: func(context.Context, string, int) error {
		return domainErrors.ErrInvalidQuantity
	}}
	resp = performRequest(t, http.MethodPost, "/products/p1/restock", NewProductHandler(invalid, invalid).Restock, []byte(`{"quantity":-1}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestProductHandlerStock(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{ProductStockFn: func(context.Context, string) (int, error) {
		return 12, nil
	}}
	resp := performRequest(t, http.MethodGet, "/products/p1/stock", NewProductHandler(facade, facade).Stock, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.StockResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Quantity != 12 {
		t.Fatalf("unexpected stock: %+v", decoded)
	}
}

func TestProductHandlerLowStock(t *testing.T) {
	var gotThreshold int
	facade := testhelpers.StoreFacadeStub{LowStockProductsFn: func(_ context.Context, threshold int) ([]model.Product, error) {
		gotThreshold = threshold
		return []model.Product{{ID: "p1", Price: money.MustParse("1.00"), Quantity: 1}}, nil
	}}
	handler := NewProductHandler(facade, facade)

	resp := performRequest(t, http.MethodGet, "/stock/low?threshold=3", handler.LowStock, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotThreshold != 3 {
		t.Fatalf("expected threshold 3, got %d", gotThreshold)
	}

	resp = performRequest(t, http.MethodGet, "/stock/low?threshold=abc", handler.LowStock, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCustomerHandlerCreate(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{CreateCustomerFn: func(_ context.Context, req usecase.CreateCustomerRequest) (string, error) {
		if req.FirstName != "Ahmed" || req.LastName != "Benali" {
			t.Fatalf("unexpected request: %+v", req)
		}
		return "cust-1", nil
	}}

	body := []byte(`{"first_name":"Ahmed","last_name":"Benali"}`)
	resp := performRequest(t, http.MethodPost, "/customers", NewCustomerHandler(facade).Create, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/customers", NewCustomerHandler(facade).Create, []byte(`{"first_name":"Ahmed"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing last name, got %d", resp.Code)
	}
}

func TestCustomerHandlerSetStatus(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{SetCustomerStatusFn: func(_ context.Context, id string, status model.ClientStatus) error {
		if status != model.ClientStatusTrusted {
			t.Fatalf("unexpected status %q", status)
		}
		return nil
	}}
	resp := performRequest(t, http.MethodPatch, "/customers/c1/status", NewCustomerHandler(facade).SetStatus, []byte(`{"status":"trusted"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	invalid := testhelpers.StoreFacadeStub{SetCustomerStatusFn: func(context.Context, string, model.ClientStatus) error {
		return domainErrors.ErrInvalidInput
	}}
	resp = performRequest(t, http.MethodPatch, "/customers/c1/status", NewCustomerHandler(invalid).SetStatus, []byte(`{"status":"vip"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{CreateOrderFn: func(_ context.Context, req usecase.CreateOrderRequest) (string, error) {
		if req.CustomerID != "c1" || len(req.Lines) != 1 || req.Lines[0].Quantity != 3 {
			t.Fatalf("unexpected request: %+v", req)
		}
		return "order-1", nil
	}}

	body := []byte(`{"customer_id":"c1","lines":[{"product_id":"p1","quantity":3}]}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	body := []byte(`{"customer_id":"c1","lines":[{"product_id":"p1","quantity":9}]}`)
	tests := []struct {
		name   string
		facade testhelpers.StoreFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "empty order", body: body, facade: testhelpers.StoreFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (string, error) {
			return "", domainErrors.ErrEmptyOrder
		}}, status: http.StatusBadRequest},
		{name: "unknown customer", body: body, facade: testhelpers.StoreFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (string, error) {
			return "", domainErrors.ErrCustomerNotFound
		}}, status: http.StatusNotFound},
		{name: "insufficient stock", body: body, facade: testhelpers.StoreFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (string, error) {
			return "", &domainErrors.InsufficientStockError{ProductID: "p1", Available: 2, Requested: 9}
		}}, status: http.StatusConflict},
		{name: "internal", body: body, facade: testhelpers.StoreFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(tt.facade).Create, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCreateReportsRemainingStock(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (string, error) {
		return "", &domainErrors.InsufficientStockError{ProductID: "p1", Available: 2, Requested: 9}
	}}
	body := []byte(`{"customer_id":"c1","lines":[{"product_id":"p1","quantity":9}]}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, body, jsonHeaders)

	var decoded map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded["available"] != float64(2) || decoded["requested"] != float64(9) {
		t.Fatalf("unexpected conflict payload: %v", decoded)
	}
}

func TestOrderHandlerList(t *testing.T) {
	var gotFilter model.OrderFilter
	var gotSort model.OrderSort
	facade := testhelpers.StoreFacadeStub{OrdersFn: func(_ context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error) {
		gotFilter = filter
		gotSort = sort
		return []model.Order{{ID: "o1", CustomerName: "Ahmed Benali", Status: model.OrderStatusPending, TotalPrice: money.MustParse("31.50")}}, nil
	}}
	handler := NewOrderHandler(facade)

	resp := performRequest(t, http.MethodGet, "/orders?customer_id=c1&status=pending&sort=date_asc", handler.List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotFilter.CustomerID != "c1" || gotFilter.Status != model.OrderStatusPending {
		t.Fatalf("unexpected filter: %+v", gotFilter)
	}
	if gotSort != model.OrderSortDateAsc {
		t.Fatalf("unexpected sort: %v", gotSort)
	}

	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].CustomerName != "Ahmed Benali" {
		t.Fatalf("unexpected orders: %+v", decoded)
	}
	if decoded[0].StatusLabel == "" || decoded[0].StatusLabel == decoded[0].Status {
		t.Fatalf("expected localized status label, got %q", decoded[0].StatusLabel)
	}

	resp = performRequest(t, http.MethodGet, "/orders?status=bogus", handler.List, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown status filter, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{UpdateOrderStatusFn: func(_ context.Context, id string, status model.OrderStatus) error {
		if status != model.OrderStatusConfirmed {
			t.Fatalf("unexpected status %q", status)
		}
		return nil
	}}
	handler := NewOrderHandler(facade)

	resp := performRequest(t, http.MethodPatch, "/orders/o1/status", handler.UpdateStatus, []byte(`{"status":"confirmed"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPatch, "/orders/o1/status", handler.UpdateStatus, []byte(`{"status":"bogus"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown status, got %d", resp.Code)
	}

	illegal := testhelpers.StoreFacadeStub{UpdateOrderStatusFn: func(context.Context, string, model.OrderStatus) error {
		return &domainErrors.InvalidTransitionError{From: string(model.OrderStatusDelivered), To: string(model.OrderStatusPending)}
	}}
	resp = performRequest(t, http.MethodPatch, "/orders/o1/status", NewOrderHandler(illegal).UpdateStatus, []byte(`{"status":"pending"}`), jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for illegal transition, got %d", resp.Code)
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{}
	resp := performRequest(t, http.MethodDelete, "/orders/o1", NewOrderHandler(facade).Delete, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	missing := testhelpers.StoreFacadeStub{DeleteOrderFn: func(context.Context, string) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/orders/o1", NewOrderHandler(missing).Delete, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
