package api

import (
	"net/http" // HTTP status codes

	"finance_tracker/internal/service" // Auth operations
	"finance_tracker/internal/token"   // Token issuance

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SignupRequest is the payload for account registration
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`     // First name must be provided
	LastName  string `json:"last_name" binding:"required"`      // Last name must be provided
	Username  string `json:"username" binding:"required"`       // Username must be provided
	Email     string `json:"email" binding:"required,email"`    // Email must be a valid address
	Password  string `json:"password" binding:"required,min=8"` // Password of at least 8 characters
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RefreshRequest is the payload for minting a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"` // Refresh token must be provided
}

// SignupHandler registers a new user account
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		user, err := service.Signup(db, service.SignupInput{
			FirstName: req.FirstName, // First name
			LastName:  req.LastName,  // Last name
			Username:  req.Username,  // Username
			Email:     req.Email,     // Email
			Password:  req.Password,  // Plaintext, hashed by the service
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // New username
		}).Info("User registered")
		Success(c, http.StatusCreated, "User registered successfully", gin.H{
			"first_name": user.FirstName, // First name
			"last_name":  user.LastName,  // Last name
			"username":   user.Username,  // Username
			"email":      user.Email,     // Email
		})
	}
}

// LoginHandler authenticates a user and returns a token pair
func LoginHandler(db *gorm.DB, tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		user, err := service.Authenticate(db, req.Username, req.Password)
		if err != nil {
			FailFromError(c, err)
			return
		}
		pair, err := tokens.IssuePair(user.ID, "")
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Authenticated user ID
		}).Info("User logged in")
		Success(c, http.StatusOK, "Login successful", pair)
	}
}

// RefreshHandler mints a new access token from a valid refresh token.
// The refresh token itself is echoed back unchanged.
func RefreshHandler(db *gorm.DB, tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		claims, err := tokens.Decode(req.RefreshToken)
		if err != nil {
			FailFromError(c, err)
			return
		}
		// The subject must still exist before a new access token is issued
		user, err := service.ResolveUser(db, claims.UserID)
		if err != nil {
			FailFromError(c, err)
			return
		}
		pair, err := tokens.IssuePair(user.ID, req.RefreshToken)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Token refreshed", pair)
	}
}
