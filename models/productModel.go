package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	Category     string  `json:"category"`
	IsAvailable  bool    `json:"isAvailable"`
}
