package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// The three error kinds every operation reports. Specific sentinels wrap
// one of these so callers can match either the exact failure or the kind
// via errors.Is.
var (
	// ErrValidation is returned when a required field is missing or invalid.
	ErrValidation = errors.New("validation failed")
	// ErrPermissionDenied is returned when a capability or ownership check fails.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	// ErrArticleNotFound is returned when an article id does not resolve.
	ErrArticleNotFound = fmt.Errorf("article %w", ErrNotFound)
	// ErrNewspaperNotFound is returned when an issue id does not resolve.
	ErrNewspaperNotFound = fmt.Errorf("newspaper %w", ErrNotFound)

	// ErrTitleRequired is returned when a title is empty.
	ErrTitleRequired = fmt.Errorf("%w: title is required", ErrValidation)
	// ErrContentRequired is returned when an article body is empty,
	// or contains only markup and whitespace on submit.
	ErrContentRequired = fmt.Errorf("%w: content is required", ErrValidation)
	// ErrUnknownCategory is returned when an article names a category
	// outside the current taxonomy.
	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrValidation)
	// ErrDuplicateCategory is returned when a settings update repeats a label.
	ErrDuplicateCategory = fmt.Errorf("%w: duplicate category", ErrValidation)
	// ErrNoArticlesSelected is returned when an issue is finalized empty.
	ErrNoArticlesSelected = fmt.Errorf("%w: at least one article must be selected", ErrValidation)
	// ErrArticleNotApproved is returned when a selected article is not
	// in the approved pool at finalization.
	ErrArticleNotApproved = fmt.Errorf("%w: selected article is not approved", ErrValidation)
	// ErrInvalidTransition is returned when a review targets an article
	// that is not pending.
	ErrInvalidTransition = fmt.Errorf("%w: article is not pending review", ErrValidation)
	// ErrInvalidLayout is returned for an unknown layout variant.
	ErrInvalidLayout = fmt.Errorf("%w: unknown layout", ErrValidation)
	// ErrInvalidRole is returned for an unknown role value.
	ErrInvalidRole = fmt.Errorf("%w: unknown role", ErrValidation)
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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

// MapErrorToHTTP maps domain errors to HTTP errors by kind.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrPermissionDenied):
		return NewHTTPError(http.StatusForbidden, err.Error(), "PERMISSION_DENIED")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
