package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
)

var allowedRoles = map[string]bool{
	"staff": true,
	"owner": true,
	"admin": true,
}

// GetUsers lists staff accounts, optionally filtered by restaurant and role.
func GetUsers(ctx *gin.Context) {
	query := initializers.DB.Model(&models.User{})

	if restaurantId := ctx.Query("restaurantId"); restaurantId != "" {
		query = query.Where("restaurant_id = ?", restaurantId)
	}
	if role := ctx.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if result := query.Order("username asc").Find(&users); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

func UpdateUserRole(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !allowedRoles[body.Role] {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown role")
		return
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userId).Update("role", body.Role)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update user role")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User role updated successfully."})
}

// DeactivateUser blocks a staff account from logging in without deleting its
// history.
func DeactivateUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userId).Update("account_activated", false)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to deactivate user")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deactivated successfully."})
}
