package auth

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/ron-haley/go-github-auth/clients"
	"github.com/ron-haley/go-github-auth/servers"
	"github.com/ron-haley/go-github-auth/users"
)

// oauthEndpoint returns the server's OAuth2 endpoints.
func oauthEndpoint(server servers.Server) oauth2.Endpoint {
	base := strings.TrimRight(server.BaseWebURL, "/")
	return oauth2.Endpoint{
		AuthURL:  base + "/login/oauth/authorize",
		TokenURL: base + "/login/oauth/access_token",
	}
}

// ExchangeCode trades a browser-flow authorization code for an access token.
func (s *Service) ExchangeCode(ctx context.Context, server servers.Server, code string) (string, error) {
	conf := &oauth2.Config{
		ClientID:     s.config.ClientID,
		ClientSecret: s.config.ClientSecret,
		Endpoint:     oauthEndpoint(server),
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "[Service.ExchangeCode] exchange authorization code")
	}
	return token.AccessToken, nil
}

// SignInWithWebBrowser runs the browser-delegated flow end to end: authorize
// in the external browser, wait for the callback, exchange the code, and
// return an authenticated client for user.
func (s *Service) SignInWithWebBrowser(ctx context.Context, user users.User, scopes clients.Scopes) (*clients.Client, error) {
	code, err := s.AuthorizeWithWebBrowser(ctx, user.Server, scopes)
	if err != nil {
		return nil, err
	}

	token, err := s.ExchangeCode(ctx, user.Server, code)
	if err != nil {
		return nil, err
	}

	client := clients.NewUnauthenticated(user)
	client.Token = token
	return client, nil
}
