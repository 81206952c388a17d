package service

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// custom function for translating validation error into user readable errors
func translateValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a numeric value", e.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with rule %s", e.Field(), e.Tag())
	}
}

// ValidateInput validates the input struct using the package validator.
// If validation fails, it logs and returns the first user-friendly error message.
// Returns nil if input is valid.
func ValidateInput(inp any) error {
	if err := validate.Struct(inp); err != nil {
		var validationErrors validator.ValidationErrors
		// Check if the error is a set of validation errors
		if errors.As(err, &validationErrors) {
			if len(validationErrors) > 0 {
				// Grab and translate the first validation error for user feedback
				errorMessage := translateValidationError(validationErrors[0])
				log.Error(errorMessage)
				// Wrap the error with a custom invalid request error
				return fmt.Errorf("%w, %s", judge_errors.ErrInvalidRequest, errorMessage)
			}
		}
	}
	// All good, input is valid
	return nil
}
