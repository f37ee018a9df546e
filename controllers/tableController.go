package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
	"gorm.io/gorm"
)

func CreateTable(ctx *gin.Context) {
	var table models.Table
	if err := ctx.ShouldBindJSON(&table); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	table.IsAvailable = true

	if err := initializers.DB.Create(&table).Error; err != nil {
		log.Println("Table creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create table")
		return
	}

	ctx.JSON(http.StatusCreated, table)
}

func GetTables(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse restaurant id")
		return
	}

	query := initializers.DB.Where("restaurant_id = ?", restaurantId)

	if available := ctx.Query("available"); available != "" {
		query = query.Where("is_available = ?", available == "true")
	}
	if location := ctx.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}

	var tables []models.Table
	if result := query.Order("table_number asc").Find(&tables); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch tables")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"tables": tables})
}

func UpdateTable(ctx *gin.Context) {
	tableId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse table id")
		return
	}

	var body struct {
		TableNumber    *int    `json:"tableNumber"`
		NumberOfPeople *int    `json:"numberOfPeople"`
		Location       *string `json:"location"`
		IsAvailable    *bool   `json:"isAvailable"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if body.TableNumber != nil {
		updates["table_number"] = *body.TableNumber
	}
	if body.NumberOfPeople != nil {
		updates["number_of_people"] = *body.NumberOfPeople
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.IsAvailable != nil {
		updates["is_available"] = *body.IsAvailable
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	result := initializers.DB.Model(&models.Table{}).Where("id = ?", tableId).Updates(updates)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update table")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Table not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Table updated successfully."})
}

func DeleteTable(ctx *gin.Context) {
	tableId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse table id")
		return
	}

	var table models.Table
	if err := initializers.DB.First(&table, tableId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Table not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch table")
		}
		return
	}
	if !table.IsAvailable {
		sendErrorResponse(ctx, http.StatusBadRequest, "Table has an open order")
		return
	}

	if result := initializers.DB.Delete(&table); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete table")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Table deleted successfully."})
}
