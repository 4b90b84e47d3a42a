package routes

import (
	"servicos_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, dashboardHandler *handlers.DashboardHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("", orderHandler.CreateOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}
