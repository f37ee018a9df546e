package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/initializers"
	"github.com/restopos/restopos-api/models"
	"gorm.io/gorm"
)

// CreateMenu accepts a menu with its nested categories and options in one
// payload; gorm persists the associations.
func CreateMenu(ctx *gin.Context) {
	var menu models.Menu
	if err := ctx.ShouldBindJSON(&menu); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&menu).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu", err)
		return
	}

	ctx.JSON(http.StatusCreated, menu)
}

func GetMenus(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid restaurant ID", err)
		return
	}

	var menus []models.Menu
	result := initializers.DB.
		Where("restaurant_id = ?", restaurantId).
		Preload("Categories.Options").
		Preload("Images").
		Find(&menus)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menus", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"menus": menus})
}

func GetMenu(ctx *gin.Context) {
	menuId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu ID", err)
		return
	}

	var menu models.Menu
	result := initializers.DB.Preload("Categories.Options").Preload("Images").First(&menu, menuId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, menu)
}

func UpdateMenu(ctx *gin.Context) {
	menuId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu ID", err)
		return
	}

	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
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
	if len(updates) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	result := initializers.DB.Model(&models.Menu{}).Where("id = ?", menuId).Updates(updates)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu updated successfully"})
}

func DeleteMenu(ctx *gin.Context) {
	menuId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Menu{}, menuId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu deleted successfully"})
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var menu models.Menu
	if err := initializers.DB.First(&menu, category.MenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu", err)
		}
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func CreateOption(ctx *gin.Context) {
	var option models.Option
	if err := ctx.ShouldBindJSON(&option); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if option.AdditionalPrice < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Additional price cannot be negative", nil)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, option.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		}
		return
	}

	if err := initializers.DB.Create(&option).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create option", err)
		return
	}

	ctx.JSON(http.StatusCreated, option)
}

func DeleteOption(ctx *gin.Context) {
	optionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid option ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Option{}, optionId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete option", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Option deleted successfully"})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadMenuImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	menuIdStr := ctx.PostForm("menuId")
	if menuIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing menuId", nil)
		return
	}

	menuId, err := strconv.Atoi(menuIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menuId", err)
		return
	}

	var menu models.Menu
	if err := initializers.DB.First(&menu, menuId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu", err)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Generate a unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%d-%s-%s", menuId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		menuImage := models.MenuImage{
			Url:    result.Location,
			MenuID: uint(menuId),
		}

		if err := initializers.DB.Create(&menuImage).Error; err != nil {
			log.Printf("Error saving image to database: %v", err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateFormula(ctx *gin.Context) {
	var formula models.AllYouCanEatFormula
	if err := ctx.ShouldBindJSON(&formula); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&formula).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create formula", err)
		return
	}

	ctx.JSON(http.StatusCreated, formula)
}

func GetFormulas(ctx *gin.Context) {
	restaurantId, err := strconv.Atoi(ctx.Param("restaurantId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid restaurant ID", err)
		return
	}

	var formulas []models.AllYouCanEatFormula
	if result := initializers.DB.Where("restaurant_id = ?", restaurantId).Find(&formulas); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch formulas", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"formulas": formulas})
}

func DeleteFormula(ctx *gin.Context) {
	formulaId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid formula ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.AllYouCanEatFormula{}, formulaId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete formula", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Formula deleted successfully"})
}
