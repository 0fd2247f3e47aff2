package service

import (
	"errors" // Error kind checks
	"fmt"    // Error wrapping
	"time"   // Transaction date default

	"finance_tracker/internal/domain" // Domain models and error kinds

	"gorm.io/gorm" // GORM ORM library
)

// TransactionInput carries every field of a transaction write. Updates
// are full replacements, matching the API contract.
type TransactionInput struct {
	Amount          float64   // Amount, must be positive
	IsExpense       bool      // Expense when true, income when false
	TransactionDate time.Time // Zero value means "now"
	CategoryID      uint      // Referenced category
}

// validate rejects bad input before any storage access
func (in TransactionInput) validate() error {
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if in.CategoryID == 0 {
		return fmt.Errorf("%w: category id is required", domain.ErrValidation)
	}
	return nil
}

// ListTransactions returns one page of the owner's transactions ordered
// by ascending id. Rows of other users are never visible here.
func ListTransactions(db *gorm.DB, userID uint, page, limit int) ([]domain.Transaction, error) {
	offset, size := paginate(page, limit)
	var transactions []domain.Transaction
	err := db.Where("user_id = ?", userID).
		Order("id asc").Offset(offset).Limit(size).
		Preload("Category").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetTransaction fetches one of the owner's transactions by id
func GetTransaction(db *gorm.DB, userID, id uint) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Category").
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// CreateTransaction inserts a transaction owned by the resolved user.
// The owner always comes from the auth gateway, never from the payload.
func CreateTransaction(db *gorm.DB, userID uint, in TransactionInput) (*domain.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	date := in.TransactionDate
	if date.IsZero() {
		date = time.Now() // Default to creation time
	}
	transaction := domain.Transaction{
		Amount:          in.Amount,     // Amount
		IsExpense:       in.IsExpense,  // Expense flag
		TransactionDate: date,          // Transaction date
		UserID:          userID,        // Resolved owner, not client-supplied
		CategoryID:      in.CategoryID, // Referenced category
	}
	if err := db.Create(&transaction).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return GetTransaction(db, userID, transaction.ID)
}

// UpdateTransaction replaces the fields of one of the owner's
// transactions. The owning user never changes on this path.
func UpdateTransaction(db *gorm.DB, userID, id uint, in TransactionInput) (*domain.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	transaction, err := GetTransaction(db, userID, id)
	if err != nil {
		return nil, err
	}
	date := in.TransactionDate
	if date.IsZero() {
		date = transaction.TransactionDate // Keep the existing date
	}
	updates := map[string]any{
		"amount":           in.Amount,     // Amount
		"is_expense":       in.IsExpense,  // Expense flag
		"transaction_date": date,          // Transaction date
		"category_id":      in.CategoryID, // Referenced category
	}
	if err := db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return GetTransaction(db, userID, id)
}

// DeleteTransaction removes one of the owner's transactions
func DeleteTransaction(db *gorm.DB, userID, id uint) (*domain.Transaction, error) {
	transaction, err := GetTransaction(db, userID, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(transaction).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return transaction, nil
}
