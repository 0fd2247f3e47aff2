package middleware

import (
	"errors"   // Error kind checks
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"finance_tracker/internal/domain"  // Domain models and error kinds
	"finance_tracker/internal/service" // User resolution
	"finance_tracker/internal/token"   // Token decoding

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// currentUserKey is the gin context key holding the resolved user
const currentUserKey = "currentUser"

// AuthMiddleware is the single authorization boundary for owner-scoped
// routes: it decodes the bearer token, resolves the subject to a stored
// user and puts that user in the request context. Handlers must scope
// every query by the resolved user, never by a client-supplied id.
func AuthMiddleware(tokens *token.Service, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Decode(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		user, err := service.ResolveUser(db, claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				// Same status as a bad token, distinct message
				abortUnauthorized(c, "User not found")
				return
			}
			// A storage failure is not an authorization verdict
			logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID, // Token subject
				"error":   err.Error(),   // Underlying error
			}).Error("Failed to resolve user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  "error",                 // Envelope status
				"message": "Internal server error", // No internal detail
			})
			return
		}
		c.Set(currentUserKey, user) // Store resolved user in context
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// abortUnauthorized writes the 401 error envelope and stops the chain
func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error", // Envelope status
		"message": message, // Rejection reason
	})
}
