package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func GetProducts(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid restaurant ID", err)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "25"))
	offset := (page - 1) * limit

	query := initializers.DB.Where("restaurant_id = ?", restaurantId)

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	result := query.Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.Product{}).Where("restaurant_id = ?", restaurantId).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		IsAvailable *bool    `json:"isAvailable"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Price != nil {
		updates["price"] = *body.Price
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.IsAvailable != nil {
		updates["is_available"] = *body.IsAvailable
	}
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.Product{}).Where("id = ?", productId).Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Product{}, productId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
