package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("/:orderId", controllers.GetOrderById)
		orders.PUT("/:orderId", controllers.UpdateOrderItems)
		orders.POST("/:orderId/menu", controllers.AddMenuToOrder)
		orders.DELETE("/:orderId/items/:itemId", controllers.DeleteOrderItem)
		orders.POST("/:orderId/clear", controllers.ClearOrderItems)
		orders.POST("/:orderId/validate", controllers.ValidateOrder)
		orders.POST("/:orderId/cancel", controllers.CancelOrder)
	}
}
