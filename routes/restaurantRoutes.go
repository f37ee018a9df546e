package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func RestaurantRoutes(server *gin.Engine) {
	server.POST("/restaurants", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.CreateRestaurant)

	restaurant := server.Group("/restaurants/:restaurantId", middlewares.RequireAuth())
	{
		restaurant.GET("", controllers.GetRestaurant)
		restaurant.GET("/settings", controllers.GetRestaurantSettings)
		restaurant.PUT("/settings", middlewares.RequireManager(), controllers.UpdateRestaurantSettings)
		restaurant.GET("/stats", middlewares.RequireManager(), controllers.GetRestaurantStats)
		restaurant.GET("/orders", controllers.GetRestaurantOrders)
		restaurant.GET("/tables", controllers.GetTables)
		restaurant.GET("/products", controllers.GetProducts)
		restaurant.GET("/menus", controllers.GetMenus)
		restaurant.GET("/formulas", controllers.GetFormulas)
		restaurant.GET("/reservations", controllers.GetReservations)
	}
}
