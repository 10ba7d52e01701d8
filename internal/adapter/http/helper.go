package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cryptolend-backend/internal/domain/validation"
)

// ---- helpers ----

// respondSaveError maps an engine save failure onto the wire:
// uniqueness → 409, other field errors → 422, reference-resolution → 422
// with the resolution message, anything else → 500.
func respondSaveError(c echo.Context, err error) error {
	if fe, ok := validation.AsFieldErrors(err); ok {
		code := http.StatusUnprocessableEntity
		for _, e := range fe {
			if e.Kind == validation.KindUnique {
				code = http.StatusConflict
				break
			}
		}
		return c.JSON(code, ErrorResponse{Error: "validation failed", Details: engineFieldErrors(fe)})
	}
	if validation.IsReferenceError(err) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func respondLookupError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
