package api

import (
	"net/http" // HTTP status codes

	"finance_tracker/internal/service" // Category operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"` // Name must be provided
	Description string `json:"description"`             // Optional description
}

// UpdateCategoryRequest is a partial update; absent fields stay untouched
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`        // Category name
	Description *string `json:"description"` // Description
}

// ListCategoriesHandler returns one page of categories
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, search := pageParams(c)
		categories, err := service.ListCategories(db, page, limit, search)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Categories fetched successfully", ListEnvelope{
			TotalCount: len(categories), // Rows in this page
			Data:       categories,      // Page of categories
		})
	}
}

// GetCategoryHandler returns a single category by id
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		category, err := service.GetCategory(db, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Category found successfully", category)
	}
}

// CreateCategoryHandler creates a category
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		category, err := service.CreateCategory(db, service.CreateCategoryInput{
			Name:        req.Name,        // Category name
			Description: req.Description, // Optional description
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"category_id": category.ID, // New category ID
		}).Info("Category created")
		Success(c, http.StatusCreated, "Category created successfully", category)
	}
}

// UpdateCategoryHandler applies a partial update to a category
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req UpdateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		category, err := service.UpdateCategory(db, id, service.UpdateCategoryInput{
			Name:        req.Name,        // Name, when set
			Description: req.Description, // Description, when set
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Category updated successfully", category)
	}
}

// DeleteCategoryHandler removes a category and, by cascade, every
// transaction and budget that references it
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		category, err := service.DeleteCategory(db, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"category_id": category.ID, // Deleted category ID
		}).Info("Category deleted")
		Success(c, http.StatusOK, "Category deleted successfully", category)
	}
}
