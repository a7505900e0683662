package handler

import (
	"github.com/avelis/spendtrack-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. Report routes are registered as
// static paths under /expenses and take precedence over the /:id parameter
// routes in echo's router.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, expenseHandler *ExpenseHandler, reportHandler *ReportHandler, authHandler *AuthHandler) {
	// Auth routes (protected)
	auth := e.Group("/auth")
	auth.Use(authMiddleware.Authenticate())
	auth.POST("/callback", authHandler.Callback)
	auth.GET("/me", authHandler.Me)

	// Expense routes (protected)
	expenses := e.Group("/expenses")
	expenses.Use(authMiddleware.Authenticate())
	expenses.Use(middleware.RateLimitMiddleware(rateLimiter))
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Reporting views
	expenses.GET("/summary", reportHandler.GetSummary)
	expenses.GET("/monthly", reportHandler.GetMonthly)
	expenses.GET("/monthly-breakdown", reportHandler.GetMonthlyBreakdown)
	expenses.GET("/top-categories", reportHandler.GetTopCategories)
	expenses.GET("/total", reportHandler.GetTotal)
}
