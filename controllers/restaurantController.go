package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CreateRestaurant(ctx *gin.Context) {
	var restaurant models.Restaurant
	if err := ctx.ShouldBindJSON(&restaurant); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if restaurant.Settings == nil {
		defaults, _ := json.Marshal(models.DefaultSettings())
		restaurant.Settings = datatypes.JSON(defaults)
	}

	if err := initializers.DB.Create(&restaurant).Error; err != nil {
		log.Println("Restaurant creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create restaurant")
		return
	}

	ctx.JSON(http.StatusCreated, restaurant)
}

func GetRestaurant(ctx *gin.Context) {
	restaurant, ok := findRestaurant(ctx)
	if !ok {
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetRestaurantSettings decodes the stored settings blob. A blob that fails
// to decode yields the defaults instead of an error.
func GetRestaurantSettings(ctx *gin.Context) {
	restaurant, ok := findRestaurant(ctx)
	if !ok {
		return
	}

	settings := models.DefaultSettings()
	if len(restaurant.Settings) > 0 {
		if err := json.Unmarshal(restaurant.Settings, &settings); err != nil {
			log.Println("Settings parse error, falling back to defaults:", err)
			settings = models.DefaultSettings()
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"settings": settings})
}

func UpdateRestaurantSettings(ctx *gin.Context) {
	restaurant, ok := findRestaurant(ctx)
	if !ok {
		return
	}

	var settings models.RestaurantSettings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	encoded, err := json.Marshal(settings)
	if err != nil {
		log.Println("Settings encode error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	if err := initializers.DB.Model(&restaurant).Update("settings", datatypes.JSON(encoded)).Error; err != nil {
		log.Println("Settings update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"settings": settings})
}

func findRestaurant(ctx *gin.Context) (models.Restaurant, bool) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse restaurant id")
		return models.Restaurant{}, false
	}

	var restaurant models.Restaurant
	if err := initializers.DB.First(&restaurant, restaurantId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch restaurant")
		}
		return models.Restaurant{}, false
	}

	return restaurant, true
}
