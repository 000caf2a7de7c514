package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "monthbook/internal/errors"
	"monthbook/internal/middleware"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error" example:"ops.create_entries[0].amount must be a positive integer (got 0)"`
	Code  string `json:"code" example:"INVALID_INPUT"`
}

// ConflictResponse is returned when the month changed since it was fetched.
type ConflictResponse struct {
	Error   string `json:"error" example:"Conflict"`
	Message string `json:"message" example:"Please fetch latest and re-apply changes."`
	Code    string `json:"code" example:"VERSION_CONFLICT"`
}
