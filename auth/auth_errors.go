package auth

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingClientID and ErrMissingClientSecret are configuration
	// errors: the OAuth application credentials were never set. They are
	// raised by New before any network traffic happens.
	ErrMissingClientID     = errors.New("client ID not configured")
	ErrMissingClientSecret = errors.New("client secret not configured")

	// ErrTwoFactorRequired means the server issued a two-factor challenge.
	// Call SignIn again with WithOneTimePassword; no automatic retry is
	// performed.
	ErrTwoFactorRequired = errors.New("one-time password required")

	// ErrServerVersionUnsupported is remapped from a not-found response
	// without scope context: the server predates the authorizations API.
	ErrServerVersionUnsupported = errors.New("server version unsupported")

	// ErrTokenUnsupportedByServer is remapped from a not-found response
	// that carried scope context: this server version rejects token or
	// scope requests.
	ErrTokenUnsupportedByServer = errors.New("token scopes unsupported by this server version")
)

// BrowserOpenError reports a failure to hand the authorization URL to the
// external browser.
type BrowserOpenError struct {
	URL string
	Err error
}

func (e *BrowserOpenError) Error() string {
	return fmt.Sprintf("opening browser at %s failed: %v", e.URL, e.Err)
}

func (e *BrowserOpenError) Unwrap() error {
	return e.Err
}
