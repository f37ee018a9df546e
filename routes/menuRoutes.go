package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func MenuRoutes(server *gin.Engine) {
	menus := server.Group("/menus", middlewares.RequireAuth())
	{
		menus.POST("", middlewares.RequireManager(), controllers.CreateMenu)
		menus.GET("/:id", controllers.GetMenu)
		menus.PATCH("/:id", middlewares.RequireManager(), controllers.UpdateMenu)
		menus.DELETE("/:id", middlewares.RequireManager(), controllers.DeleteMenu)
	}

	server.POST("/categories", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.CreateCategory)
	server.POST("/options", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.CreateOption)
	server.DELETE("/options/:id", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.DeleteOption)
	server.POST("/menu-images", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.UploadMenuImages)

	server.POST("/formulas", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.CreateFormula)
	server.DELETE("/formulas/:id", middlewares.RequireAuth(), middlewares.RequireManager(), controllers.DeleteFormula)
}
