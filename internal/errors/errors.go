package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError. Field and message must both match.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrBuildingNotFound     = &NotFoundError{Entity: "building"}
	ErrActivityNotFound     = &NotFoundError{Entity: "activity"}
)

// MaxActivityLevel is the deepest level an activity may sit at; roots are level 1.
const MaxActivityLevel = 3

// Validation Errors
var (
	ErrMaxNestingDepth       = &ValidationError{Field: "parent_id", Message: fmt.Sprintf("maximum nesting depth is %d", MaxActivityLevel)}
	ErrParentActivityMissing = &ValidationError{Field: "parent_id", Message: "parent activity not found"}
	ErrInvalidLatitude       = &ValidationError{Field: "latitude", Message: "must be between -90 and 90"}
	ErrInvalidLongitude      = &ValidationError{Field: "longitude", Message: "must be between -180 and 180"}
	ErrNegativeRadius        = &ValidationError{Field: "radius", Message: "must not be negative"}
	ErrUnknownBuilding       = &ValidationError{Field: "building_id", Message: "building does not exist"}
)

// Authentication Errors
var (
	ErrMissingAuthorization = &AuthenticationError{Message: "Authorization header is required"}
	ErrInvalidAuthScheme    = &AuthenticationError{Message: "Invalid authorization header format"}
	ErrInvalidAPIKey        = &AuthenticationError{Message: "Invalid API key"}
)

// Configuration Errors
var (
	ErrAPIKeyNotSet = &ConfigurationError{Message: "API_KEY must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// ValidationMessage returns the client-facing message of a ValidationError in the chain,
// or the full error text when there is none.
func ValidationMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Field != "" {
			return fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Message)
		}
		return validationErr.Message
	}
	return err.Error()
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
