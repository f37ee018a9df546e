package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
)

func CreateReservation(ctx *gin.Context) {
	var reservation models.Reservation
	if err := ctx.ShouldBindJSON(&reservation); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if reservation.Status == "" {
		reservation.Status = models.ReservationStatusPending
	}

	if err := initializers.DB.Create(&reservation).Error; err != nil {
		log.Println("Reservation creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	ctx.JSON(http.StatusCreated, reservation)
}

// GetReservations lists a restaurant's reservations filtered by status and
// day; `date` selects one day's bucket, `from`/`to` an arbitrary range.
func GetReservations(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse restaurant id")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "asc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	query := initializers.DB.Where("restaurant_id = ?", restaurantId)
	countQuery := initializers.DB.Model(&models.Reservation{}).Where("restaurant_id = ?", restaurantId)

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}
	if date := ctx.Query("date"); date != "" {
		query = query.Where("DATE(reserved_at) = ?", date)
		countQuery = countQuery.Where("DATE(reserved_at) = ?", date)
	}
	if from := ctx.Query("from"); from != "" {
		query = query.Where("reserved_at >= ?", from)
		countQuery = countQuery.Where("reserved_at >= ?", from)
	}
	if to := ctx.Query("to"); to != "" {
		query = query.Where("reserved_at <= ?", to)
		countQuery = countQuery.Where("reserved_at <= ?", to)
	}

	var reservations []models.Reservation
	result := query.Order("reserved_at " + sortOrder).Limit(limit).Offset(offset).Find(&reservations)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}

	var count int64
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"reservations": reservations,
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

func UpdateReservation(ctx *gin.Context) {
	reservationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse reservation id")
		return
	}

	var body struct {
		TableID        *uint   `json:"tableId"`
		NumberOfPeople *int    `json:"numberOfPeople"`
		ReservedAt     *string `json:"reservedAt"`
		Status         *string `json:"status"`
		Notes          *string `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if body.TableID != nil {
		updates["table_id"] = *body.TableID
	}
	if body.NumberOfPeople != nil {
		updates["number_of_people"] = *body.NumberOfPeople
	}
	if body.ReservedAt != nil {
		updates["reserved_at"] = *body.ReservedAt
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	result := initializers.DB.Model(&models.Reservation{}).Where("id = ?", reservationId).Updates(updates)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update reservation")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Reservation not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Reservation updated successfully."})
}

func DeleteReservation(ctx *gin.Context) {
	reservationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse reservation id")
		return
	}

	if result := initializers.DB.Delete(&models.Reservation{}, reservationId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Reservation deleted successfully."})
}
