package domain

// User Model
type User struct {
	ID             uint          `gorm:"primaryKey" json:"id"`                      // Primary key
	FirstName      string        `gorm:"not null" json:"first_name"`                // First name
	LastName       string        `gorm:"not null" json:"last_name"`                 // Last name
	Username       string        `gorm:"unique;not null" json:"username"`           // Unique username
	Email          string        `gorm:"unique;not null" json:"email"`              // Unique email
	Password       string        `gorm:"not null" json:"-"`                         // Hashed password, never serialized
	CurrentBalance float64       `gorm:"not null;default:0" json:"current_balance"` // Balance, must stay non-negative
	Transactions   []Transaction `json:"-"`                                         // Owned transactions, removed with the user by cascade
	Budgets        []Budget      `json:"-"`                                         // Owned budgets, removed with the user by cascade
}
