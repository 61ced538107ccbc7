package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	if err := validate.RegisterValidation("filename", validateFilename); err != nil {
		panic(fmt.Sprintf("failed to register filename validation: %v", err))
	}
}

// Validate validates a struct using tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateFilename validates a file name separately
func ValidateFilename(name string) error {
	return validate.Var(name, "required,filename")
}

// Custom validation functions

func validateFilename(fl validator.FieldLevel) bool {
	name := fl.Field().String()

	// File name requirements:
	// - Length between 1 and 255 characters
	// - No path separators
	// - No control characters
	if len(name) < 1 || len(name) > 255 {
		return false
	}

	if strings.ContainsAny(name, `/\`) {
		return false
	}

	for _, char := range name {
		if unicode.IsControl(char) {
			return false
		}
	}

	return true
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string
	Error string
}

// FormatError formats a validation error into a human-readable message
func FormatError(err error) []ValidationError {
	var validationErrors []ValidationError

	if err == nil {
		return validationErrors
	}

	// Type assert to validator.ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			var message string

			switch e.Tag() {
			case "required":
				message = fmt.Sprintf("%s is required", e.Field())
			case "min":
				message = fmt.Sprintf("%s must not be empty", e.Field())
			case "email":
				message = "Invalid email format"
			case "filename":
				message = "File name must be 1-255 characters and contain no path separators or control characters"
			case "base64":
				message = fmt.Sprintf("%s must be valid base64", e.Field())
			default:
				message = fmt.Sprintf("Invalid value for %s", e.Field())
			}

			validationErrors = append(validationErrors, ValidationError{
				Field: strings.ToLower(e.Field()),
				Error: message,
			})
		}
	}

	return validationErrors
}
