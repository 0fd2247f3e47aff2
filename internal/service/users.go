package service

import (
	"errors" // Error kind checks
	"fmt"    // Error wrapping

	"finance_tracker/internal/domain" // Domain models and error kinds
	"finance_tracker/internal/utils"  // Password hashing

	"gorm.io/gorm" // GORM ORM library
)

// CreateUserInput carries every field of a new user record
type CreateUserInput struct {
	FirstName      string  // First name
	LastName       string  // Last name
	Username       string  // Unique username
	Email          string  // Unique email
	Password       string  // Plaintext password, hashed before storage
	CurrentBalance float64 // Starting balance, non-negative
}

// UpdateUserInput is a partial update: only non-nil fields are applied,
// unset fields are never overwritten.
type UpdateUserInput struct {
	FirstName      *string  // First name
	LastName       *string  // Last name
	Username       *string  // Unique username
	Email          *string  // Unique email
	CurrentBalance *float64 // Balance, non-negative
}

// ListUsers returns one page of users ordered by ascending id,
// optionally filtered by a substring match on the username.
func ListUsers(db *gorm.DB, page, limit int, search string) ([]domain.User, error) {
	offset, size := paginate(page, limit)
	var users []domain.User
	q := db.Order("id asc").Offset(offset).Limit(size)
	if search != "" {
		q = q.Where("username LIKE ?", "%"+search+"%")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a user by id
func GetUser(db *gorm.DB, id uint) (*domain.User, error) {
	var user domain.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user with a hashed password
func CreateUser(db *gorm.DB, in CreateUserInput) (*domain.User, error) {
	if in.CurrentBalance < 0 {
		return nil, fmt.Errorf("%w: current balance must be non-negative", domain.ErrValidation)
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		FirstName:      in.FirstName,      // First name
		LastName:       in.LastName,       // Last name
		Username:       in.Username,       // Unique username
		Email:          in.Email,          // Unique email
		Password:       hash,              // Bcrypt hash
		CurrentBalance: in.CurrentBalance, // Starting balance
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already exists", domain.ErrDuplicateKey)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the set fields of a partial update to an existing
// user. The whole update is one atomic statement; a constraint
// violation rolls it back and surfaces as a domain error.
func UpdateUser(db *gorm.DB, id uint, in UpdateUserInput) (*domain.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.CurrentBalance != nil {
		if *in.CurrentBalance < 0 {
			return nil, fmt.Errorf("%w: current balance must be non-negative", domain.ErrValidation)
		}
		updates["current_balance"] = *in.CurrentBalance
	}
	if len(updates) == 0 {
		return user, nil // Nothing to apply
	}
	if err := db.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already exists", domain.ErrDuplicateKey)
		}
		return nil, translateWriteError(err)
	}
	return GetUser(db, id)
}

// DeleteUser removes a user. Owned transactions and budgets are removed
// with it by the foreign key cascade.
func DeleteUser(db *gorm.DB, id uint) (*domain.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(user).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return user, nil
}
