package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrAttachmentNotFound is returned when an attachment is not found.
	ErrAttachmentNotFound = errors.New("attachment not found")
	// ErrMissingRequiredFields is returned when a create request lacks name,
	// category or the first image.
	ErrMissingRequiredFields = errors.New("name, category, and image are required")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAdmin is returned when the email is not on the admin allow-list.
	ErrNotAdmin = errors.New("not authorized as admin")
	// ErrSettingsUnavailable is returned when the notification settings row
	// cannot be read.
	ErrSettingsUnavailable = errors.New("failed to fetch notification settings")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors are
// treated as upstream failures; their message is kept in the response for
// operator diagnosis.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProductNotFound.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrAttachmentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAttachmentNotFound.Error(), "ATTACHMENT_NOT_FOUND")
	case errors.Is(err, ErrMissingRequiredFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingRequiredFields.Error(), "MISSING_REQUIRED_FIELDS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotAdmin):
		return NewHTTPError(http.StatusForbidden, ErrNotAdmin.Error(), "NOT_AUTHORIZED")
	case errors.Is(err, ErrSettingsUnavailable):
		return NewHTTPError(http.StatusInternalServerError, ErrSettingsUnavailable.Error(), "SETTINGS_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
