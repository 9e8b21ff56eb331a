// Package clients defines the client session entity and the server-side
// authorization records the sign-in workflows exchange.
package clients

import (
	"github.com/ron-haley/go-github-auth/servers"
	"github.com/ron-haley/go-github-auth/users"
)

// Client is one authentication session against a single server. A client is
// owned exclusively by the sign-in attempt that created it until it is
// returned to the caller; the token is assigned at most once, on success.
type Client struct {
	User   users.User
	Server servers.Server
	Token  string
}

// NewUnauthenticated creates a client for the user with no token yet.
func NewUnauthenticated(user users.User) *Client {
	return &Client{User: user, Server: user.Server}
}

// IsAuthenticated reports whether the session carries a bearer token.
func (c *Client) IsAuthenticated() bool {
	return c.Token != ""
}
