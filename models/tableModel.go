package models

import "gorm.io/gorm"

type Table struct {
	gorm.Model
	RestaurantID   uint   `json:"restaurantId" binding:"required"`
	TableNumber    int    `json:"tableNumber" binding:"required"`
	NumberOfPeople int    `json:"numberOfPeople"`
	Location       string `json:"location"`
	IsAvailable    bool   `json:"isAvailable"`
}
