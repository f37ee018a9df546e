package models

import "gorm.io/gorm"

const (
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusDeleted    = "DELETED"
)

type Order struct {
	gorm.Model
	Reference      string      `json:"reference"`
	RestaurantID   uint        `json:"restaurantId"`
	TableID        *uint       `json:"tableId"`
	Status         string      `json:"status"`
	AmountTotal    float64     `json:"amount_total"`
	AmountSubtotal float64     `json:"amount_subtotal"`
	AmountTax      float64     `json:"amount_tax"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// An OrderItem is either a plain product line, a menu line, a formula line,
// or an option line attached to a menu line via ParentOrderItemID.
type OrderItem struct {
	gorm.Model
	OrderID           uint    `json:"orderId"`
	Name              string  `json:"name"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	Subtotal          float64 `json:"subtotal"`
	ProductID         *uint   `json:"productId"`
	MenuID            *uint   `json:"menuId"`
	MenuOptionID      *uint   `json:"menuOptionId"`
	AllYouCanEatID    *uint   `json:"allYouCanEatId"`
	ParentOrderItemID *uint   `json:"parentOrderItemId"`
}
