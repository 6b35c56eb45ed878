// MangaCompass - Mood-Based Manga Recommendation Core
// Copyright 2026 MangaCompass contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mangacompass/mangacompass

// Package validation provides struct validation using go-playground/validator v10.
// It exposes a thread-safe singleton validator instance with custom validators
// for application-specific rules.
//
// Custom validators:
//   - asin: a 10-character uppercase alphanumeric Amazon product identifier
//
// Example usage:
//
//	type Item struct {
//	    Rating float64 `validate:"min=0,max=10"`
//	    ASIN   string  `validate:"omitempty,asin"`
//	}
//
//	if err := validation.ValidateStruct(&item); err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// asinPattern matches a well-formed Amazon product identifier.
var asinPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// ValidationError represents a single field validation error.
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the struct field name that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "100" for "max=100").
func (e *ValidationError) Param() string {
	return e.param
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// StructValidationError is a collection of field validation errors for one
// validated value.
type StructValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field errors.
func (ve *StructValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined message.
func (ve *StructValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, len(ve.errors))
	for i, err := range ve.errors {
		messages[i] = err.Error()
	}

	return strings.Join(messages, "; ")
}

// GetValidator returns the singleton validator instance.
// The validator is initialized once with custom validators and options.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Registration only fails for empty tag names.
		_ = validate.RegisterValidation("asin", func(fl validator.FieldLevel) bool {
			return asinPattern.MatchString(fl.Field().String())
		})
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *StructValidationError otherwise.
func ValidateStruct(s interface{}) *StructValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &StructValidationError{
			errors: []ValidationError{
				{field: "unknown", tag: "unknown", message: err.Error()},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			message: translateError(fieldErr),
		}
	}

	return &StructValidationError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"asin":     "%s must be a 10-character Amazon product identifier",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok && param != "" {
		return fmt.Sprintf(template, field, param)
	}

	if param != "" {
		return fmt.Sprintf("%s failed validation: %s=%s", field, tag, param)
	}
	return fmt.Sprintf("%s failed validation: %s", field, tag)
}
