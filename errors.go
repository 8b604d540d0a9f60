package main

import (
	"fmt"
	"net/http"
)

// Error carries an error kind the core can be matched on with errors.Is,
// an internal message for logs, and an external message plus HTTP status
// for the dispenser server surface. Key material and full tokens must
// never end up in any of these fields.
type Error struct {
	Kind            string
	InternalMessage string
	ExternalMessage string
	HTTPStatusCode  int
	Detail          string
	Wrapped         error
}

func (err *Error) Unwrap() error {
	return err.Wrapped
}

func (err *Error) Error() string {
	msg := err.InternalMessage
	if err.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, err.Detail)
	}
	if err.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Wrapped)
	}

	return msg
}

// Is matches any error of the same kind, so copies made by New still
// compare equal to their sentinel.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

func (err *Error) New(options ...ErrOption) *Error {
	errCopy := &Error{
		Kind:            err.Kind,
		InternalMessage: err.InternalMessage,
		ExternalMessage: err.ExternalMessage,
		HTTPStatusCode:  err.HTTPStatusCode,
		Detail:          err.Detail,
		Wrapped:         err.Wrapped,
	}

	for _, option := range options {
		option(errCopy)
	}

	return errCopy
}

type ErrOption func(*Error)

func WithWrappedError(err error) ErrOption {
	return func(e *Error) {
		e.Wrapped = err
	}
}

func WithExternalMessage(msg string) ErrOption {
	return func(e *Error) {
		e.ExternalMessage = msg
	}
}

func WithDetail(msg string) ErrOption {
	return func(e *Error) {
		e.Detail = msg
	}
}

var (
	ErrInvalidInput = &Error{
		Kind:            "invalid_input",
		InternalMessage: "invalid input",
		ExternalMessage: "invalid request",
		HTTPStatusCode:  http.StatusBadRequest,
	}

	ErrKeyNotFound = &Error{
		Kind:            "key_not_found",
		InternalMessage: "private key not found",
		ExternalMessage: "server misconfiguration",
		HTTPStatusCode:  http.StatusInternalServerError,
	}

	ErrKeyInvalid = &Error{
		Kind:            "key_invalid",
		InternalMessage: "private key is not a valid RSA key",
		ExternalMessage: "server misconfiguration",
		HTTPStatusCode:  http.StatusInternalServerError,
	}

	ErrSigning = &Error{
		Kind:            "signing_error",
		InternalMessage: "couldn't sign app JWT",
		ExternalMessage: "server misconfiguration",
		HTTPStatusCode:  http.StatusInternalServerError,
	}

	ErrRemote = &Error{
		Kind:            "remote_error",
		InternalMessage: "GitHub API returned an error",
		ExternalMessage: "upstream API error",
		HTTPStatusCode:  http.StatusBadGateway,
	}

	ErrMalformedResponse = &Error{
		Kind:            "malformed_response",
		InternalMessage: "GitHub API response is missing an expected field",
		ExternalMessage: "upstream API error",
		HTTPStatusCode:  http.StatusBadGateway,
	}

	ErrRepoNotFound = &Error{
		Kind:            "repo_not_found",
		InternalMessage: "no installation has access to the repository",
		ExternalMessage: "repository not reachable by this app",
		HTTPStatusCode:  http.StatusNotFound,
	}

	ErrNoInstallations = &Error{
		Kind:            "no_installations",
		InternalMessage: "app has no installations",
		ExternalMessage: "app has no installations",
		HTTPStatusCode:  http.StatusNotFound,
	}

	ErrUnauthorizedCaller = &Error{
		Kind:            "unauthorized_caller",
		InternalMessage: "caller is not authorized for the requested repository",
		ExternalMessage: "not authorized for this repository",
		HTTPStatusCode:  http.StatusUnauthorized,
	}
)
