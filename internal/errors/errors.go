package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmojiNotFound is returned when an emoji is not found.
	ErrEmojiNotFound = errors.New("emoji not found")
	// ErrFeedbackNotFound is returned when a feedback entry is not found.
	ErrFeedbackNotFound = errors.New("feedback not found")
	// ErrUnauthorized is returned when a role check fails.
	ErrUnauthorized = errors.New("unauthorized: admin role required")
	// ErrAlreadyReviewed is returned when deleting feedback that has been reviewed.
	ErrAlreadyReviewed = errors.New("feedback has been reviewed and cannot be deleted")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrProviderUnavailable is returned when the meaning provider cannot be reached.
	ErrProviderUnavailable = errors.New("meaning provider unavailable")
	// ErrInvalidResponse is returned when the provider payload lacks a meaning.
	ErrInvalidResponse = errors.New("invalid response from meaning provider")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy degrades to a generic 500 so internal messages never leak.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmojiNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EMOJI_NOT_FOUND")
	case errors.Is(err, ErrFeedbackNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FEEDBACK_NOT_FOUND")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusForbidden, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrAlreadyReviewed):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REVIEWED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrProviderUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "PROVIDER_UNAVAILABLE")
	case errors.Is(err, ErrInvalidResponse):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "INVALID_PROVIDER_RESPONSE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
