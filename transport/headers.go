package transport

import "encoding/base64"

const (
	// AcceptHeader pins the API preview version every request is issued with.
	AcceptHeader = "application/vnd.github.moondragon+json"

	// OneTimePasswordHeader carries the two-factor one-time password. The
	// same header on a 401 response announces that one is required.
	OneTimePasswordHeader = "X-GitHub-OTP"

	// OAuthScopesHeader and AcceptedOAuthScopesHeader are attached by the
	// remote service to scope-related failures.
	OAuthScopesHeader         = "X-OAuth-Scopes"
	AcceptedOAuthScopesHeader = "X-Accepted-OAuth-Scopes"
)

// BasicAuthorization builds the Authorization header value for a login and
// password pair.
func BasicAuthorization(login, password string) string {
	credentials := base64.StdEncoding.EncodeToString([]byte(login + ":" + password))
	return "Basic " + credentials
}
