package domain

// BudgetPeriod is the fixed set of budget intervals.
type BudgetPeriod string

// Supported budget periods
const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
)

// Valid reports whether p is one of the supported periods.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Budget Model
type Budget struct {
	ID         uint         `gorm:"primaryKey" json:"id"`                                    // Primary key
	Limit      float64      `gorm:"column:budget_limit;not null" json:"limit"`               // Spending limit, non-negative ("limit" is reserved in MySQL)
	Period     BudgetPeriod `gorm:"type:varchar(16);not null;default:monthly" json:"period"` // daily, weekly or monthly
	UserID     uint         `gorm:"not null;index" json:"user_id"`                           // Owning user
	User       User         `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CategoryID uint         `gorm:"not null;index" json:"category_id"` // Referenced category
	Category   Category     `gorm:"constraint:OnDelete:CASCADE;" json:"category"`
}
