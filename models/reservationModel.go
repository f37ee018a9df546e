package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
)

type Reservation struct {
	gorm.Model
	RestaurantID   uint      `json:"restaurantId" binding:"required"`
	TableID        *uint     `json:"tableId"`
	CustomerName   string    `json:"customerName" binding:"required"`
	CustomerPhone  string    `json:"customerPhone"`
	NumberOfPeople int       `json:"numberOfPeople" binding:"required"`
	ReservedAt     time.Time `json:"reservedAt" binding:"required"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
}
