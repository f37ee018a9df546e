package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/controllers"
	"github.com/restopos/restopos-api/middlewares"
)

func ReservationRoutes(server *gin.Engine) {
	reservations := server.Group("/reservations", middlewares.RequireAuth())
	{
		reservations.POST("", controllers.CreateReservation)
		reservations.PATCH("/:id", controllers.UpdateReservation)
		reservations.DELETE("/:id", controllers.DeleteReservation)
	}
}
