package api

import (
	"errors"   // Error kind checks
	"net/http" // HTTP status codes

	"finance_tracker/internal/domain" // Domain error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Success writes the success envelope with an optional data payload
func Success(c *gin.Context, status int, message string, data any) {
	body := gin.H{
		"status":  "success", // Envelope status
		"message": message,   // Human readable message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Fail writes the error envelope
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "error", // Envelope status
		"message": message, // Human readable message
	})
}

// FailFromError maps a domain error kind to its HTTP status code and
// writes the error envelope. Unexpected errors become a generic 500
// with no internal detail beyond the log entry.
func FailFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateKey):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, domain.ErrTokenInvalid):
		Fail(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domain.ErrUnauthorized):
		Fail(c, http.StatusUnauthorized, "Unauthorized")
	default:
		// Never leak raw storage errors to the client
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Request route
			"error": err.Error(),  // Underlying error
		}).Error("Unexpected internal error")
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// ListEnvelope is the payload shape of every list endpoint
type ListEnvelope struct {
	TotalCount int `json:"total_count"` // Number of rows in this page
	Data       any `json:"data"`        // Page of rows
}
