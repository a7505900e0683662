package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the failure envelope for every endpoint. The message is
// safe for clients; internal error detail stays in the logs.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewValidationError creates a bad request response
func NewValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// NewUnauthorizedError creates an unauthorized response
func NewUnauthorizedError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

// NewNotFoundError creates a not found response. Records owned by another
// user intentionally produce the same response as missing ones.
func NewNotFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}
