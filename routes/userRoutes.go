package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func UserRoutes(server *gin.Engine) {
	users := server.Group("/users", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		users.GET("", controllers.GetUsers)
		users.PATCH("/:userId/role", controllers.UpdateUserRole)
		users.POST("/:userId/deactivate", controllers.DeactivateUser)
	}
}
