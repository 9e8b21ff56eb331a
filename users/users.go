// Package users holds the identity a sign-in attempt runs as.
package users

import "github.com/ron-haley/go-github-auth/servers"

// User is an immutable identity: the raw login the user typed and the server
// it belongs to. Rederiving against another server produces a new value.
type User struct {
	RawLogin string
	Server   servers.Server
}

// New builds a user for the given login and server.
func New(rawLogin string, server servers.Server) User {
	return User{RawLogin: rawLogin, Server: server}
}

// OnServer rederives the user against a different server, e.g. the secure
// variant during sign-in recovery. The receiver is never mutated.
func (u User) OnServer(server servers.Server) User {
	return User{RawLogin: u.RawLogin, Server: server}
}
