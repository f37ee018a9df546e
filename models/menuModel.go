package models

import "gorm.io/gorm"

type Menu struct {
	gorm.Model
	RestaurantID uint        `json:"restaurantId" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	Price        float64     `json:"price" binding:"required"`
	Categories   []Category  `json:"categories" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	Images       []MenuImage `json:"images" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// Category is a menu option group, e.g. "Choose your side".
type Category struct {
	gorm.Model
	MenuID     uint     `json:"menuId"`
	Name       string   `json:"name" binding:"required"`
	IsRequired bool     `json:"isRequired"`
	MaxOptions int      `json:"maxOptions" binding:"required,min=1"`
	Options    []Option `json:"options" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type Option struct {
	gorm.Model
	CategoryID      uint    `json:"categoryId"`
	Name            string  `json:"name" binding:"required"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

type MenuImage struct {
	gorm.Model
	Url    string `json:"url" binding:"required"`
	MenuID uint   `json:"menuId" binding:"required"`
}

type AllYouCanEatFormula struct {
	gorm.Model
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
}
