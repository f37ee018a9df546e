package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/products", middlewares.RequireAuth())
	{
		products.POST("", middlewares.RequireManager(), controllers.CreateProduct)
		products.GET("/:id", controllers.GetProduct)
		products.PATCH("/:id", middlewares.RequireManager(), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RequireManager(), controllers.DeleteProduct)
	}
}
