package initializers

import (
	"log"

	"github.com/restopos/restopos-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Table{},
		&models.Product{},
		&models.Menu{},
		&models.Category{},
		&models.Option{},
		&models.MenuImage{},
		&models.AllYouCanEatFormula{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	log.Println("Database synced successfully.")
}
