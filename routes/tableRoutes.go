package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func TableRoutes(server *gin.Engine) {
	tables := server.Group("/tables", middlewares.RequireAuth())
	{
		tables.POST("", middlewares.RequireManager(), controllers.CreateTable)
		tables.PATCH("/:id", controllers.UpdateTable)
		tables.DELETE("/:id", middlewares.RequireManager(), controllers.DeleteTable)
	}
}
