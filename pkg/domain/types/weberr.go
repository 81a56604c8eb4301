package types

import (
	"net/http"
)

// WebFailure is the error surfaced at the service boundary. The HTTP edge maps
// it to a status code and a short token body; the wrapped cause stays internal.
type WebFailure struct {
	Status int
	Token  string
	cause  error
}

func (e *WebFailure) Error() string {
	if e.cause != nil {
		return e.Token + ": " + e.cause.Error()
	}
	return e.Token
}

func (e *WebFailure) Unwrap() error {
	return e.cause
}

// NewBadRequest returns a 400 failure with the given token.
func NewBadRequest(token string) *WebFailure {
	return &WebFailure{Status: http.StatusBadRequest, Token: token}
}

// NewNotFound returns a 404 failure with the given token.
func NewNotFound(token string) *WebFailure {
	return &WebFailure{Status: http.StatusNotFound, Token: token}
}

// NewInternal returns a 500 failure with the given token, keeping cause for logs.
func NewInternal(token string, cause error) *WebFailure {
	return &WebFailure{Status: http.StatusInternalServerError, Token: token, cause: cause}
}
