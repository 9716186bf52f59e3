package notion

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jomei/notionapi"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

// APIError wraps a failed Notion API call with its HTTP status.
// It unwraps to domain.ErrTransport so core code can match the whole
// class with errors.Is.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("notion: API error %d: %s", e.Status, e.Message)
}

// Unwrap classifies every API failure as a transport error.
func (e *APIError) Unwrap() error {
	return domain.ErrTransport
}

// wrapError converts client errors into *APIError.
func wrapError(err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		return &APIError{Status: apiErr.Status, Message: apiErr.Message}
	}
	// Network-level failure, no HTTP status.
	return &APIError{Status: 0, Message: err.Error()}
}

// IsUnauthorized returns true if the error indicates an invalid token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound returns true if the error indicates a missing or unshared
// resource. Notion reports pages not shared with the integration as 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests
}
