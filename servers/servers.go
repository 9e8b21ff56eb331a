// Package servers describes the GitHub-style deployments a client can sign in
// against: github.com itself or an Enterprise install.
package servers

import (
	"net/url"
	"strings"
)

const (
	dotcomBaseWebURL  = "https://github.com"
	dotcomAPIEndpoint = "https://api.github.com"

	// Enterprise installs serve the v3 API under the web base URL.
	enterpriseAPIPath = "api/v3"
)

// Server identifies one deployment: the web front end users authorize through
// and the API endpoint requests are issued against. Server is an immutable
// value; derived variants are new values.
type Server struct {
	BaseWebURL  string `json:"baseWebURL"`
	APIEndpoint string `json:"apiEndpoint"`
}

// Dotcom returns the server value for github.com.
func Dotcom() Server {
	return Server{BaseWebURL: dotcomBaseWebURL, APIEndpoint: dotcomAPIEndpoint}
}

// NewEnterprise builds a Server for an Enterprise deployment rooted at baseURL.
func NewEnterprise(baseURL string) Server {
	trimmed := strings.TrimRight(baseURL, "/")
	return Server{
		BaseWebURL:  trimmed,
		APIEndpoint: trimmed + "/" + enterpriseAPIPath,
	}
}

// Secure returns a copy of the server with both URLs forced onto https. Used
// when the remote rejects the original scheme during sign-in.
func (s Server) Secure() Server {
	return Server{
		BaseWebURL:  secureURL(s.BaseWebURL),
		APIEndpoint: secureURL(s.APIEndpoint),
	}
}

func secureURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Scheme = "https"
	return u.String()
}
