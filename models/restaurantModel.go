package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string         `json:"name" binding:"required"`
	Address  string         `json:"address"`
	Phone    string         `json:"phone"`
	OwnerID  uint           `json:"ownerId"`
	Settings datatypes.JSON `json:"settings"`
}

// RestaurantSettings is the decoded shape of Restaurant.Settings. A blob
// that fails to decode is replaced by DefaultSettings, never surfaced as
// an error.
type RestaurantSettings struct {
	SelectedTheme string `json:"selectedTheme"`
	ReceiptFooter string `json:"receiptFooter"`
	TaxLabel      string `json:"taxLabel"`
}

func DefaultSettings() RestaurantSettings {
	return RestaurantSettings{
		SelectedTheme: "light",
		TaxLabel:      "TVA 10%",
	}
}
