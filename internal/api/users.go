package api

import (
	"net/http" // HTTP status codes

	"finance_tracker/internal/service" // User operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`     // First name must be provided
	LastName       string  `json:"last_name" binding:"required"`      // Last name must be provided
	Username       string  `json:"username" binding:"required"`       // Username must be provided
	Email          string  `json:"email" binding:"required,email"`    // Email must be a valid address
	Password       string  `json:"password" binding:"required,min=8"` // Password of at least 8 characters
	CurrentBalance float64 `json:"current_balance" binding:"gte=0"`   // Starting balance, non-negative
}

// UpdateUserRequest is a partial update; absent fields stay untouched
type UpdateUserRequest struct {
	FirstName      *string  `json:"first_name"`                                // First name
	LastName       *string  `json:"last_name"`                                 // Last name
	Username       *string  `json:"username"`                                  // Username
	Email          *string  `json:"email" binding:"omitempty,email"`           // Email must be valid when present
	CurrentBalance *float64 `json:"current_balance" binding:"omitempty,gte=0"` // Balance, non-negative when present
}

// ListUsersHandler returns one page of users
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, search := pageParams(c)
		users, err := service.ListUsers(db, page, limit, search)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Users fetched successfully", ListEnvelope{
			TotalCount: len(users), // Rows in this page
			Data:       users,      // Page of users
		})
	}
}

// GetUserHandler returns a single user by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		user, err := service.GetUser(db, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "User found successfully", user)
	}
}

// CreateUserHandler creates a user record
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		user, err := service.CreateUser(db, service.CreateUserInput{
			FirstName:      req.FirstName,      // First name
			LastName:       req.LastName,       // Last name
			Username:       req.Username,       // Username
			Email:          req.Email,          // Email
			Password:       req.Password,       // Plaintext, hashed by the service
			CurrentBalance: req.CurrentBalance, // Starting balance
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // New user ID
		}).Info("User created")
		Success(c, http.StatusCreated, "User created successfully", user)
	}
}

// UpdateUserHandler applies a partial update to a user
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		user, err := service.UpdateUser(db, id, service.UpdateUserInput{
			FirstName:      req.FirstName,      // First name, when set
			LastName:       req.LastName,       // Last name, when set
			Username:       req.Username,       // Username, when set
			Email:          req.Email,          // Email, when set
			CurrentBalance: req.CurrentBalance, // Balance, when set
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "User updated successfully", user)
	}
}

// DeleteUserHandler removes a user and, by cascade, everything it owns
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		user, err := service.DeleteUser(db, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Deleted user ID
		}).Info("User deleted")
		Success(c, http.StatusOK, "User deleted successfully", user)
	}
}
