// Package auth implements the two client-side sign-in workflows against a
// GitHub-style API: native credential submission and browser-delegated
// authorization.
package auth

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ron-haley/go-github-auth/browser"
	"github.com/ron-haley/go-github-auth/callback"
	"github.com/ron-haley/go-github-auth/transport"
)

// Config carries the OAuth application credentials issued by the remote
// service.
type Config struct {
	ClientID     string
	ClientSecret string
}

// Service runs the sign-in workflows. One Service may be shared by any number
// of concurrent sign-in attempts; each attempt owns its own client until it
// is returned to the caller.
type Service struct {
	config      Config
	requester   transport.Requester
	broadcaster *callback.Broadcaster
	opener      browser.Opener
	logger      zerolog.Logger
	newState    func() string
}

// Option modifies a Service at construction time.
type Option func(*Service)

// WithLogger attaches a workflow logger (zerolog.Nop by default).
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithBrowserOpener replaces the external-browser collaborator.
func WithBrowserOpener(opener browser.Opener) Option {
	return func(s *Service) {
		s.opener = opener
	}
}

// WithStateFunc overrides correlation-state minting (primarily for testing).
func WithStateFunc(newState func() string) Option {
	return func(s *Service) {
		s.newState = newState
	}
}

// New initializes a Service with the required dependencies. Missing
// application credentials are a configuration error and fail here, before
// any workflow runs.
func New(config Config, requester transport.Requester, broadcaster *callback.Broadcaster, options ...Option) (*Service, error) {
	if config.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if config.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}
	if requester == nil {
		return nil, errors.New("[New] requester is required")
	}
	if broadcaster == nil {
		return nil, errors.New("[New] broadcaster is required")
	}

	service := &Service{
		config:      config,
		requester:   requester,
		broadcaster: broadcaster,
		opener:      browser.Default(),
		logger:      zerolog.Nop(),
		newState:    uuid.NewString,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}
