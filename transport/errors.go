package transport

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable classification of a failed request.
type ErrorCode string

const (
	// CodeTransport covers anything without a more specific classification:
	// connection failures, decode failures, plain HTTP error statuses.
	CodeTransport ErrorCode = "transport_error"

	// CodeUnsupportedScheme means the request URL's scheme cannot be used.
	// The sign-in workflow retries once against the secure server variant.
	CodeUnsupportedScheme ErrorCode = "unsupported_url_scheme"

	// CodeOneTimePasswordRequired means the server issued a two-factor
	// challenge and the call must be repeated with a one-time password.
	CodeOneTimePasswordRequired ErrorCode = "one_time_password_required"
)

// Error is the classified failure a Requester returns. HTTPStatus is zero
// when the failure happened before a response arrived. ScopesMentioned
// records whether the error payload or headers referenced OAuth scopes; the
// sign-in workflow uses it to disambiguate not-found responses.
type Error struct {
	Code            ErrorCode
	HTTPStatus      int
	ScopesMentioned bool
	Message         string
	Err             error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError pulls a classified *Error out of err's chain.
func AsError(err error) (*Error, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified, true
	}
	return nil, false
}
