package api

import (
	"net/http" // HTTP status codes

	"finance_tracker/internal/domain"     // Domain models
	"finance_tracker/internal/middleware" // Resolved user lookup
	"finance_tracker/internal/service"    // Budget operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateBudgetRequest is the payload for creating a budget. Limit is a
// pointer so an explicit 0 passes required validation.
type CreateBudgetRequest struct {
	Limit      *float64 `json:"limit" binding:"required,gte=0"`                        // Limit must be provided and non-negative
	Period     string   `json:"period" binding:"omitempty,oneof=daily weekly monthly"` // Optional, defaults to monthly
	CategoryID uint     `json:"category_id" binding:"required"`                        // Category must be provided
}

// UpdateBudgetRequest replaces the limit and period of a budget. An
// omitted limit is rejected rather than treated as zero.
type UpdateBudgetRequest struct {
	Limit  *float64 `json:"limit" binding:"required,gte=0"`                        // Limit must be provided and non-negative
	Period string   `json:"period" binding:"omitempty,oneof=daily weekly monthly"` // Optional, keeps the current one
}

// ListBudgetsHandler returns one page of the caller's budgets
func ListBudgetsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		page, limit, _ := pageParams(c)
		budgets, err := service.ListBudgets(db, user.ID, page, limit)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Budgets fetched successfully", ListEnvelope{
			TotalCount: len(budgets), // Rows in this page
			Data:       budgets,      // Page of budgets
		})
	}
}

// GetBudgetHandler returns one of the caller's budgets by id
func GetBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		budget, err := service.GetBudget(db, user.ID, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Budget found successfully", budget)
	}
}

// CreateBudgetHandler creates a budget owned by the caller
func CreateBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var req CreateBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		budget, err := service.CreateBudget(db, user.ID, service.BudgetInput{
			Limit:      *req.Limit,                      // Spending limit
			Period:     domain.BudgetPeriod(req.Period), // Period, empty means monthly
			CategoryID: req.CategoryID,                  // Category
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,   // Owner
			"budget_id": budget.ID, // New budget ID
		}).Info("Budget created")
		Success(c, http.StatusCreated, "Budget created successfully", budget)
	}
}

// UpdateBudgetHandler replaces the limit and period of one of the
// caller's budgets
func UpdateBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req UpdateBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		budget, err := service.UpdateBudget(db, user.ID, id, service.BudgetInput{
			Limit:  *req.Limit,                      // Spending limit
			Period: domain.BudgetPeriod(req.Period), // Period, empty keeps the current one
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Budget updated successfully", budget)
	}
}

// DeleteBudgetHandler removes one of the caller's budgets
func DeleteBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		budget, err := service.DeleteBudget(db, user.ID, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,   // Owner
			"budget_id": budget.ID, // Deleted budget ID
		}).Info("Budget deleted")
		Success(c, http.StatusOK, "Budget deleted successfully", budget)
	}
}
