package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
)

// respondWithError maps a service error onto the HTTP response. The taxonomy
// is shared by every handler: forbidden 403, not found 404, validation 400,
// state conflict 409, capacity 409 with the rack named, everything else 500.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	var capErr *apperrors.CapacityError
	switch {
	case errors.As(err, &capErr):
		logger.Warn("Capacity violation", slog.String("rack_id", capErr.RackID))
		c.JSON(http.StatusConflict, gin.H{
			"error":     capErr.Error(),
			"rackID":    capErr.RackID,
			"requested": capErr.Requested.String(),
			"available": capErr.Available.String(),
		})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("State conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindingErrorMessage turns a gin binding failure into a readable message,
// listing each failed field when the error came from the validator.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, len(validationErrs))
		for i, fieldErr := range validationErrs {
			parts[i] = fmt.Sprintf("field '%s' failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag())
		}
		return "Invalid request payload: " + strings.Join(parts, "; ")
	}
	return "Invalid request payload: " + err.Error()
}
