package routes

import (
	"lavajato/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathExpenses = "/expenses"
	PathPricing  = "/pricing"
	PathReports  = "/reports"
)

func addCarwashRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ServiceOrderHandler,
	expenseHandler *handlers.ExpenseHandler,
	pricingHandler *handlers.PricingHandler,
	reportHandler *handlers.ReportHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/trash", orderHandler.ListTrash)
		orders.GET("/next-number", orderHandler.NextSequenceNumber)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.PATCH("/:id/complete", orderHandler.CompleteOrder)
		orders.PATCH("/:id/reopen", orderHandler.ReopenOrder)
		orders.PATCH("/:id/restore", orderHandler.RestoreOrder)
		orders.DELETE("/:id", orderHandler.SoftDeleteOrder)
		orders.DELETE("/:id/permanent", orderHandler.PermanentlyDeleteOrder)
		orders.POST("/:id/invoice", orderHandler.AttachInvoice)
		orders.POST("/:id/pix", orderHandler.CreatePixCharge)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.PUT("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/suggestion", pricingHandler.SuggestPrice)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/daily", reportHandler.DailyReport)
		reports.GET("/daily/whatsapp", reportHandler.WhatsAppReport)
	}
}
