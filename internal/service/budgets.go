package service

import (
	"errors" // Error kind checks
	"fmt"    // Error wrapping

	"finance_tracker/internal/domain" // Domain models and error kinds

	"gorm.io/gorm" // GORM ORM library
)

// BudgetInput carries every field of a budget write. Updates are full
// replacements of the limit and period; the category never changes.
type BudgetInput struct {
	Limit      float64             // Spending limit, non-negative
	Period     domain.BudgetPeriod // Empty means monthly
	CategoryID uint                // Referenced category, required on create
}

// validate rejects bad input before any storage access
func (in BudgetInput) validate() error {
	if in.Limit < 0 {
		return fmt.Errorf("%w: limit must be non-negative", domain.ErrValidation)
	}
	if in.Period != "" && !in.Period.Valid() {
		return fmt.Errorf("%w: period must be daily, weekly or monthly", domain.ErrValidation)
	}
	return nil
}

// ListBudgets returns one page of the owner's budgets ordered by
// ascending id.
func ListBudgets(db *gorm.DB, userID uint, page, limit int) ([]domain.Budget, error) {
	offset, size := paginate(page, limit)
	var budgets []domain.Budget
	err := db.Where("user_id = ?", userID).
		Order("id asc").Offset(offset).Limit(size).
		Preload("Category").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

// GetBudget fetches one of the owner's budgets by id
func GetBudget(db *gorm.DB, userID, id uint) (*domain.Budget, error) {
	var budget domain.Budget
	err := db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Category").
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// CreateBudget inserts a budget owned by the resolved user
func CreateBudget(db *gorm.DB, userID uint, in BudgetInput) (*domain.Budget, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category id is required", domain.ErrValidation)
	}
	period := in.Period
	if period == "" {
		period = domain.PeriodMonthly // Default period
	}
	budget := domain.Budget{
		Limit:      in.Limit,      // Spending limit
		Period:     period,        // Budget period
		UserID:     userID,        // Resolved owner, not client-supplied
		CategoryID: in.CategoryID, // Referenced category
	}
	if err := db.Create(&budget).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return GetBudget(db, userID, budget.ID)
}

// UpdateBudget replaces the limit and period of one of the owner's budgets
func UpdateBudget(db *gorm.DB, userID, id uint, in BudgetInput) (*domain.Budget, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	budget, err := GetBudget(db, userID, id)
	if err != nil {
		return nil, err
	}
	period := in.Period
	if period == "" {
		period = budget.Period // Keep the existing period
	}
	updates := map[string]any{
		"budget_limit": in.Limit, // Spending limit
		"period":       period,   // Budget period
	}
	if err := db.Model(budget).Updates(updates).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return GetBudget(db, userID, id)
}

// DeleteBudget removes one of the owner's budgets
func DeleteBudget(db *gorm.DB, userID, id uint) (*domain.Budget, error) {
	budget, err := GetBudget(db, userID, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(budget).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return budget, nil
}
