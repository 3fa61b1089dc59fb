package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sel3a/sel3a/internal/server/http/handlers"
	"github.com/sel3a/sel3a/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade, facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.POST("/operator/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))

	products := authorized.Group("/products")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PATCH("/:id", productHandler.Update)
	products.PATCH("/:id/active", productHandler.SetActive)
	products.GET("/:id/stock", productHandler.Stock)
	products.POST("/:id/restock", productHandler.Restock)

	authorized.GET("/stock/low", productHandler.LowStock)

	customers := authorized.Group("/customers")
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PATCH("/:id", customerHandler.Update)
	customers.PATCH("/:id/active", customerHandler.SetActive)
	customers.PATCH("/:id/status", customerHandler.SetStatus)

	orders := authorized.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete)

	return engine
}
