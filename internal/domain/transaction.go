package domain

import "time"

// Transaction Model
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`                    // Primary key
	Amount          float64   `gorm:"not null" json:"amount"`                  // Amount, always positive
	IsExpense       bool      `gorm:"not null;default:true" json:"is_expense"` // Expense when true, income when false
	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`        // Defaults to creation time when omitted
	UserID          uint      `gorm:"not null;index" json:"user_id"`           // Owning user
	User            User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CategoryID      uint      `gorm:"not null;index" json:"category_id"` // Referenced category
	Category        Category  `gorm:"constraint:OnDelete:CASCADE;" json:"category"`
}
