package domain

// Category Model
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name        string `gorm:"unique;not null" json:"name"` // Unique category name
	Description string `json:"description"`                 // Optional description
}
