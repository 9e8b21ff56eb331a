package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/ron-haley/go-github-auth/clients"
	"github.com/ron-haley/go-github-auth/servers"
)

// AuthorizationURL builds the page a user authorizes the application on.
// Trailing slashes are trimmed from the server's web base URL.
func AuthorizationURL(server servers.Server, clientID string, scopes clients.Scopes, state string) string {
	base := strings.TrimRight(server.BaseWebURL, "/")

	query := url.Values{}
	query.Set("client_id", clientID)
	query.Set("scope", scopes.String())
	query.Set("state", state)

	return base + "/login/oauth/authorize?" + query.Encode()
}

// AuthorizeWithWebBrowser opens the server's authorization page in the
// external browser and waits for the matching callback, returning the
// authorization code it carried (empty if the callback had none).
//
// The broadcaster subscription is registered before the browser opens so a
// callback arriving unusually fast cannot be missed. The subscription is
// single-shot and filtered by a freshly minted state token, so concurrent
// browser sign-ins never steal each other's callbacks. No timeout is applied
// here; bound the wait through ctx.
func (s *Service) AuthorizeWithWebBrowser(ctx context.Context, server servers.Server, scopes clients.Scopes) (string, error) {
	state := s.newState()

	matches, cancel := s.broadcaster.Subscribe(func(u *url.URL) bool {
		return u.Query().Get("state") == state
	})
	defer cancel()

	authorizeURL := AuthorizationURL(server, s.config.ClientID, scopes, state)
	s.logger.Debug().Str("url", authorizeURL).Msg("opening authorization page")

	if err := s.opener.Open(authorizeURL); err != nil {
		return "", &BrowserOpenError{URL: authorizeURL, Err: err}
	}

	select {
	case u := <-matches:
		return u.Query().Get("code"), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
