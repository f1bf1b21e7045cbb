package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailRequired is returned when no verified email can be resolved.
	ErrEmailRequired = errors.New("email required")
	// ErrInvalidSession is returned when the provider rejects an access token.
	ErrInvalidSession = errors.New("authentication failed: invalid session")
	// ErrInvitationRequired is returned when a player tries to register without an invitation.
	ErrInvitationRequired = errors.New("access denied: players must be invited by a coach to join")
	// ErrInvitationNotFound is returned for an unknown or already-consumed invitation token.
	ErrInvitationNotFound = errors.New("invalid or expired invitation")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a concurrent create loses the uniqueness race.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrNotConfigured is returned when the identity provider credentials are absent.
	ErrNotConfigured = errors.New("identity provider not configured")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors surface
// their message with a 500; this is an internal tool, not a public product.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_REQUIRED")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	case errors.Is(err, ErrInvitationRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVITATION_REQUIRED")
	case errors.Is(err, ErrInvitationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INVITATION_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrNotConfigured):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "NOT_CONFIGURED")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
