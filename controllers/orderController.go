package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
	"github.com/restopos/restopos-api/ordercalc"
	"gorm.io/gorm"
)

type productSelectionBody struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateOrder opens a new order for a table. The order row and the table's
// availability flip are committed together.
func CreateOrder(ctx *gin.Context) {
	var body struct {
		RestaurantID uint  `json:"restaurantId" binding:"required"`
		TableID      *uint `json:"tableId"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order := models.Order{
		Reference:    uuid.NewString(),
		RestaurantID: body.RestaurantID,
		TableID:      body.TableID,
		Status:       models.OrderStatusInProgress,
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if body.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *body.TableID).Error; err != nil {
				return err
			}
			if !table.IsAvailable {
				return errTableOccupied
			}
			if err := tx.Model(&table).Update("is_available", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&order).Error
	})

	if errors.Is(err, errTableOccupied) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Table already has an open order")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "Table not found")
		return
	}
	if err != nil {
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"order": order})
}

var errTableOccupied = errors.New("table already occupied")

// UpdateOrderItems merges selected products and formulas into the order's
// line items and persists the recomputed totals.
func UpdateOrderItems(ctx *gin.Context) {
	var body struct {
		UpdateItems bool                          `json:"update_items"`
		Products    map[uint]productSelectionBody `json:"products"`
		Formulas    map[uint]productSelectionBody `json:"formulas"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !body.UpdateItems || (len(body.Products) == 0 && len(body.Formulas) == 0) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing selected")
		return
	}
	for _, sel := range body.Products {
		if sel.Quantity < 1 || sel.UnitPrice < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product selection")
			return
		}
	}
	for _, sel := range body.Formulas {
		if sel.Quantity < 1 || sel.UnitPrice < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid formula selection")
			return
		}
	}

	order, ok := loadOpenOrder(ctx)
	if !ok {
		return
	}

	products := make(map[uint]ordercalc.ProductSelection, len(body.Products))
	for id, sel := range body.Products {
		products[id] = ordercalc.ProductSelection{Name: sel.Name, Quantity: sel.Quantity, UnitPrice: sel.UnitPrice}
	}
	formulas := make(map[uint]ordercalc.FormulaSelection, len(body.Formulas))
	for id, sel := range body.Formulas {
		formulas[id] = ordercalc.FormulaSelection{Name: sel.Name, Quantity: sel.Quantity, UnitPrice: sel.UnitPrice}
	}

	merged := ordercalc.MergeProducts(order.Items, products)
	merged = ordercalc.MergeFormulas(merged, formulas)
	totals := ordercalc.RecomputeTotals(merged)

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		for i := range merged {
			merged[i].OrderID = order.ID
			if merged[i].ID == 0 {
				if err := tx.Create(&merged[i]).Error; err != nil {
					return err
				}
			} else if err := tx.Save(&merged[i]).Error; err != nil {
				return err
			}
		}
		return applyTotals(tx, order.ID, totals)
	})
	if err != nil {
		log.Println("Order update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":           merged,
		"amount_total":    totals.AmountTotal,
		"amount_subtotal": totals.AmountSubtotal,
		"amount_tax":      totals.AmountTax,
	})
}

// AddMenuToOrder confirms a menu selection against the order. Parent line,
// option lines and totals are written in a single transaction so a failure
// attaching options never leaves a priced menu line without its children.
func AddMenuToOrder(ctx *gin.Context) {
	var body struct {
		MenuID   uint            `json:"menuId" binding:"required"`
		Quantity int             `json:"quantity" binding:"required,min=1"`
		Options  map[uint][]uint `json:"options"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, ok := loadOpenOrder(ctx)
	if !ok {
		return
	}

	var menu models.Menu
	if err := initializers.DB.Preload("Categories.Options").First(&menu, body.MenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu not found")
		} else {
			log.Println("Menu fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch menu")
		}
		return
	}

	picked := pickOptions(menu, body.Options)

	line, err := ordercalc.BuildMenuLine(menu, body.Quantity, picked)
	if err != nil {
		var vErr *ordercalc.ValidationError
		if errors.As(err, &vErr) {
			sendErrorResponse(ctx, http.StatusBadRequest, vErr.Message)
			return
		}
		log.Println("Menu line error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add menu")
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		line.Parent.OrderID = order.ID
		if err := tx.Create(&line.Parent).Error; err != nil {
			return err
		}
		for i := range line.Options {
			line.Options[i].OrderID = order.ID
			line.Options[i].ParentOrderItemID = &line.Parent.ID
			if err := tx.Create(&line.Options[i]).Error; err != nil {
				return err
			}
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		return applyTotals(tx, order.ID, ordercalc.RecomputeTotals(items))
	})
	if err != nil {
		log.Println("Menu add error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add menu to order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"menuItem":    line.Parent,
		"optionItems": line.Options,
	})
}

// pickOptions runs the requested option ids through the per-category
// selection rules (single-choice replacement, cap overflow ignored).
func pickOptions(menu models.Menu, requested map[uint][]uint) map[uint][]models.Option {
	picked := make(map[uint][]models.Option)
	for _, category := range menu.Categories {
		ids := requested[category.ID]
		if len(ids) == 0 {
			continue
		}
		byID := make(map[uint]models.Option, len(category.Options))
		for _, opt := range category.Options {
			byID[opt.ID] = opt
		}
		sel := ordercalc.NewCategorySelection(category)
		for _, id := range ids {
			if opt, ok := byID[id]; ok {
				sel.Pick(opt)
			}
		}
		if opts := sel.Picked(); len(opts) > 0 {
			picked[category.ID] = opts
		}
	}
	return picked
}

// DeleteOrderItem removes one line and recomputes totals. Option children of
// a removed menu line are kept as-is.
func DeleteOrderItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	order, ok := loadOpenOrder(ctx)
	if !ok {
		return
	}

	remaining := ordercalc.RemoveItem(order.Items, uint(itemId))
	if len(remaining) == len(order.Items) {
		sendErrorResponse(ctx, http.StatusNotFound, "Order item not found")
		return
	}
	totals := ordercalc.RecomputeTotals(remaining)

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}, itemId).Error; err != nil {
			return err
		}
		return applyTotals(tx, order.ID, totals)
	})
	if err != nil {
		log.Println("Item removal error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":           remaining,
		"amount_total":    totals.AmountTotal,
		"amount_subtotal": totals.AmountSubtotal,
		"amount_tax":      totals.AmountTax,
	})
}

// ClearOrderItems empties the order and zeroes its totals.
func ClearOrderItems(ctx *gin.Context) {
	order, ok := loadOpenOrder(ctx)
	if !ok {
		return
	}

	totals := ordercalc.RecomputeTotals(ordercalc.ClearItems())

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return applyTotals(tx, order.ID, totals)
	})
	if err != nil {
		log.Println("Order clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":           []models.OrderItem{},
		"amount_total":    totals.AmountTotal,
		"amount_subtotal": totals.AmountSubtotal,
		"amount_tax":      totals.AmountTax,
	})
}

// ValidateOrder closes the order as completed, frees its table and sends the
// receipt to the print webhook. A webhook failure is logged, not surfaced.
func ValidateOrder(ctx *gin.Context) {
	order, ok := loadOpenOrder(ctx)
	if !ok {
		return
	}

	if err := closeOrder(order, models.OrderStatusCompleted); err != nil {
		log.Println("Order validation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate order")
		return
	}

	if err := sendReceipt(order); err != nil {
		log.Println("Receipt webhook error:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order validated successfully."})
}

// CancelOrder closes the order as deleted and frees its table.
func CancelOrder(ctx *gin.Context) {
	order, ok := loadOpenOrder(ctx)
	if !ok {
		return
	}

	if err := closeOrder(order, models.OrderStatusDeleted); err != nil {
		log.Println("Order cancellation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order cancelled successfully."})
}

func closeOrder(order models.Order, status string) error {
	return initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", status).Error; err != nil {
			return err
		}
		if order.TableID != nil {
			return tx.Model(&models.Table{}).Where("id = ?", *order.TableID).Update("is_available", true).Error
		}
		return nil
	})
}

func sendReceipt(order models.Order) error {
	webhookURL := os.Getenv("PRINT_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + os.Getenv("PRINT_WEBHOOK_TOKEN"),
			"Accept":        "application/json",
			"Content-Type":  "application/json",
		}).
		SetBody(map[string]any{
			"order_id":        order.ID,
			"reference":       order.Reference,
			"items":           order.Items,
			"amount_total":    order.AmountTotal,
			"amount_subtotal": order.AmountSubtotal,
			"amount_tax":      order.AmountTax,
		}).
		Post(webhookURL)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.New("print webhook returned status " + strconv.Itoa(resp.StatusCode()))
	}
	return nil
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("Items").First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetRestaurantOrders lists a restaurant's orders filtered by table, status
// and date range.
func GetRestaurantOrders(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse restaurant id")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items").Where("restaurant_id = ?", restaurantId)
	countQuery := initializers.DB.Model(&models.Order{}).Where("restaurant_id = ?", restaurantId)

	if tableId := ctx.Query("tableId"); tableId != "" {
		query = query.Where("table_id = ?", tableId)
		countQuery = countQuery.Where("table_id = ?", tableId)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}
	if from := ctx.Query("from"); from != "" {
		query = query.Where("created_at >= ?", from)
		countQuery = countQuery.Where("created_at >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		query = query.Where("created_at <= ?", to)
		countQuery = countQuery.Where("created_at <= ?", to)
	}

	var orders []models.Order
	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// loadOpenOrder fetches the order in the orderId route param with its items
// and rejects terminal orders. A false return means a response was already
// written.
func loadOpenOrder(ctx *gin.Context) (models.Order, bool) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return models.Order{}, false
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Order fetch error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return models.Order{}, false
	}

	if order.Status != models.OrderStatusInProgress {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order is no longer open")
		return models.Order{}, false
	}

	return order, true
}

func applyTotals(tx *gorm.DB, orderId uint, totals ordercalc.Totals) error {
	return tx.Model(&models.Order{}).Where("id = ?", orderId).Updates(map[string]any{
		"amount_total":    totals.AmountTotal,
		"amount_subtotal": totals.AmountSubtotal,
		"amount_tax":      totals.AmountTax,
	}).Error
}
