package validators

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

var shared = sync.OnceValue(New)

// IsOneOf reports whether value is non-empty and exactly one of allowed.
func IsOneOf(value string, allowed ...string) bool {
	if len(allowed) == 0 {
		return false
	}
	return shared().Var(value, "required,oneof="+strings.Join(allowed, " ")) == nil
}
