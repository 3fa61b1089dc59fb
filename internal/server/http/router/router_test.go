package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/money"
	"github.com/sel3a/sel3a/internal/server/http/handlers"
	testhelpers "github.com/sel3a/sel3a/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StoreFacadeStub{
		ProductsFn: func(context.Context, bool) ([]model.Product, error) {
			return []model.Product{{ID: "p1", Name: "laptop", Price: money.MustParse("1500.00"), Quantity: 4, Active: true}}, nil
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/operator/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}
}

func TestSetupRejectsAnonymousRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.StoreFacadeStub{}, logger)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/customers"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/stock/low"},
	}
	for _, p := range paths {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(p.method, p.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s %s without token, got %d", p.method, p.path, resp.Code)
		}
	}
}

var _ handlers.StoreFacade = testhelpers.StoreFacadeStub{}
