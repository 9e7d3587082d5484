package handler

import (
	"github.com/Rugged007/Finance-App/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, transactionHandler *TransactionHandler, dashboardHandler *DashboardHandler, insightHandler *InsightHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Dashboard routes
	api.GET("/summary", dashboardHandler.GetSummary)
	api.GET("/insights", insightHandler.GetInsights)
	api.GET("/categories", ListCategories)
}
