package service

import (
	"errors" // Error kind checks
	"fmt"    // Error wrapping

	"finance_tracker/internal/domain" // Domain models and error kinds
	"finance_tracker/internal/utils"  // Password hashing

	"gorm.io/gorm" // GORM ORM library
)

// SignupInput carries the identity fields and plaintext password for a
// new account. The plaintext is hashed here and never persisted.
type SignupInput struct {
	FirstName string // First name
	LastName  string // Last name
	Username  string // Unique username
	Email     string // Unique email
	Password  string // Plaintext password, hashed before storage
}

// Signup registers a new user. A username or email collision yields
// ErrDuplicateKey without revealing which field collided.
func Signup(db *gorm.DB, in SignupInput) (*domain.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		FirstName: in.FirstName, // First name
		LastName:  in.LastName,  // Last name
		Username:  in.Username,  // Unique username
		Email:     in.Email,     // Unique email
		Password:  hash,         // Bcrypt hash, never the plaintext
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Same error whether the username or the email collided
			return nil, fmt.Errorf("%w: username or email already exists", domain.ErrDuplicateKey)
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a username/password pair. An unknown username
// and a wrong password produce the identical error so callers cannot
// enumerate accounts.
func Authenticate(db *gorm.DB, username, password string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &user, nil
}

// ResolveUser looks up the user behind a decoded token subject. A
// missing user is an authorization failure, not a plain not-found.
func ResolveUser(db *gorm.DB, id uint) (*domain.User, error) {
	var user domain.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrUnauthorized)
		}
		return nil, err
	}
	return &user, nil
}
