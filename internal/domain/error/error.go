package error

import (
	"errors"
	"fmt"
)

// DomainError represents the base interface for all domain errors
type DomainError interface {
	error
	Code() string
	Details() map[string]interface{}
}

// ValidationError represents bad input: a field value or a cross-entity rule.
// The caller can always recover by correcting the input.
type ValidationError struct {
	Message string
	Field   string
	Value   interface{}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Code() string {
	return "VALIDATION_ERROR"
}

func (e *ValidationError) Details() map[string]interface{} {
	details := map[string]interface{}{
		"message": e.Message,
	}
	if e.Field != "" {
		details["field"] = e.Field
	}
	if e.Value != nil {
		details["value"] = e.Value
	}
	return details
}

// NotFoundError represents a reference to an id that does not exist
type NotFoundError struct {
	Message  string
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Resource != "" && e.ID != "" {
		return fmt.Sprintf("%s with ID '%s' not found", e.Resource, e.ID)
	}
	return "resource not found"
}

func (e *NotFoundError) Code() string {
	return "NOT_FOUND"
}

func (e *NotFoundError) Details() map[string]interface{} {
	details := map[string]interface{}{
		"message": e.Error(),
	}
	if e.Resource != "" {
		details["resource"] = e.Resource
	}
	if e.ID != "" {
		details["id"] = e.ID
	}
	return details
}

// InternalError represents internal server errors
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "internal server error"
}

func (e *InternalError) Code() string {
	return "INTERNAL_ERROR"
}

func (e *InternalError) Details() map[string]interface{} {
	details := map[string]interface{}{
		"message": e.Error(),
	}
	if e.Cause != nil {
		details["cause"] = e.Cause.Error()
	}
	return details
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating common errors

// NewValidationError creates a new validation error
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// NewNotFoundError creates a new not found error. The message follows the
// "<Resource> not found" form the API has always returned.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		Message:  resource + " not found",
		Resource: resource,
		ID:       id,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// Error checking helper functions

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNotFoundError checks if error is a not found error
func IsNotFoundError(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInternalError checks if error is an internal error
func IsInternalError(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// GetErrorCode extracts error code from domain error
func GetErrorCode(err error) string {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code()
	}
	return "UNKNOWN_ERROR"
}

// GetErrorDetails extracts error details from domain error
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details()
	}
	return map[string]interface{}{
		"message": err.Error(),
	}
}
