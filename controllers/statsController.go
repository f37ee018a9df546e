package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
	"gorm.io/gorm"
)

type dailyRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type topItem struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// GetRestaurantStats aggregates completed orders for the dashboard: overall
// revenue and count, a per-day revenue series and the best selling items.
func GetRestaurantStats(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse restaurant id")
		return
	}

	base := initializers.DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantId, models.OrderStatusCompleted)

	if from := ctx.Query("from"); from != "" {
		base = base.Where("created_at >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		base = base.Where("created_at <= ?", to)
	}

	var totals struct {
		Revenue float64
		Tax     float64
		Orders  int64
	}
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(amount_total), 0) AS revenue, COALESCE(SUM(amount_tax), 0) AS tax, COUNT(*) AS orders").
		Scan(&totals).Error; err != nil {
		log.Println("Stats totals error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	var perDay []dailyRevenue
	if err := base.Session(&gorm.Session{}).
		Select("DATE(created_at) AS day, COALESCE(SUM(amount_total), 0) AS revenue, COUNT(*) AS orders").
		Group("DATE(created_at)").
		Order("day asc").
		Scan(&perDay).Error; err != nil {
		log.Println("Stats per-day error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	topLimit, _ := strconv.Atoi(ctx.DefaultQuery("topLimit", "10"))
	var top []topItem
	if err := initializers.DB.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ? AND orders.status = ?", restaurantId, models.OrderStatusCompleted).
		Where("order_items.parent_order_item_id IS NULL").
		Select("order_items.name AS name, SUM(order_items.quantity) AS quantity, SUM(order_items.subtotal) AS revenue").
		Group("order_items.name").
		Order("quantity desc").
		Limit(topLimit).
		Scan(&top).Error; err != nil {
		log.Println("Stats top items error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"revenue":    totals.Revenue,
		"tax":        totals.Tax,
		"orderCount": totals.Orders,
		"perDay":     perDay,
		"topItems":   top,
	})
}
