package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/ron-haley/go-github-auth/clients"
	"github.com/ron-haley/go-github-auth/transport"
	"github.com/ron-haley/go-github-auth/users"
)

// SignInOption adjusts a single native sign-in attempt.
type SignInOption func(*signInRequest)

type signInRequest struct {
	oneTimePassword string
	note            string
	noteURL         string
	fingerprint     string
}

// WithOneTimePassword supplies the two-factor one-time password. It is only
// attached on the delete-and-recreate path; a first attempt that needs one
// fails with ErrTwoFactorRequired and must be re-invoked with this option.
func WithOneTimePassword(password string) SignInOption {
	return func(r *signInRequest) {
		r.oneTimePassword = password
	}
}

// WithNote annotates the created authorization.
func WithNote(note string) SignInOption {
	return func(r *signInRequest) {
		r.note = note
	}
}

// WithNoteURL links the created authorization to an application page.
func WithNoteURL(noteURL string) SignInOption {
	return func(r *signInRequest) {
		r.noteURL = noteURL
	}
}

// WithFingerprint distinguishes multiple authorizations of one application.
func WithFingerprint(fingerprint string) SignInOption {
	return func(r *signInRequest) {
		r.fingerprint = fingerprint
	}
}

// SignIn authorizes user against its server with the configured OAuth
// application and returns an authenticated client, or exactly one terminal
// error. A server policy that withholds the token for a pre-existing
// authorization is recovered transparently by deleting the stale record and
// authorizing again; a rejected insecure scheme is retried once against the
// server's secure variant. A two-factor challenge is returned as
// ErrTwoFactorRequired and must be answered by re-invoking with
// WithOneTimePassword. Cancelling ctx aborts at the next round trip and
// yields no client.
func (s *Service) SignIn(ctx context.Context, user users.User, password string, scopes clients.Scopes, options ...SignInOption) (*clients.Client, error) {
	request := &signInRequest{}
	for _, opt := range options {
		opt(request)
	}

	base := s.authorizationDescriptor(user, password, scopes, request)
	client, authorization, err := s.authorizeAndRecreate(ctx, user, base, request)

	if classified, ok := transport.AsError(err); ok && classified.Code == transport.CodeUnsupportedScheme {
		s.logger.Debug().
			Str("login", user.RawLogin).
			Msg("insecure scheme rejected, retrying against secure server")

		secureUser := user.OnServer(user.Server.Secure())
		secureBase := s.authorizationDescriptor(secureUser, password, scopes, request)
		client, authorization, err = s.authorizeAndRecreate(ctx, secureUser, secureBase, request)
	}
	if err != nil {
		return nil, remapTerminal(err)
	}

	client.Token = authorization.Token
	s.logger.Debug().Str("login", user.RawLogin).Msg("sign-in succeeded")
	return client, nil
}

// authorizationDescriptor builds the base request every authorize attempt
// starts from.
func (s *Service) authorizationDescriptor(user users.User, password string, scopes clients.Scopes, request *signInRequest) *transport.Descriptor {
	descriptor := transport.NewDescriptor(transport.MethodPut, "authorizations/clients/"+s.config.ClientID).
		WithParameter("scopes", scopes.String()).
		WithParameter("client_secret", s.config.ClientSecret).
		WithHeader("Accept", transport.AcceptHeader).
		WithHeader("Authorization", transport.BasicAuthorization(user.RawLogin, password))

	if request.note != "" {
		descriptor.WithParameter("note", request.note)
	}
	if request.noteURL != "" {
		descriptor.WithParameter("note_url", request.noteURL)
	}
	if request.fingerprint != "" {
		descriptor.WithParameter("fingerprint", request.fingerprint)
	}
	return descriptor
}

// authorize issues the base request as an unauthenticated client and decodes
// the resulting authorization.
func (s *Service) authorize(ctx context.Context, user users.User, base *transport.Descriptor) (*clients.Client, *clients.Authorization, error) {
	client := clients.NewUnauthenticated(user)

	resp, err := s.requester.Enqueue(ctx, client.Server, base.Clone())
	if err != nil {
		return nil, nil, errors.Wrap(err, "[Service.authorize] enqueue")
	}

	var authorization clients.Authorization
	if err := resp.Decode(&authorization); err != nil {
		return nil, nil, errors.Wrap(err, "[Service.authorize] decode authorization")
	}
	return client, &authorization, nil
}

// authorizeAndRecreate runs the authorize step and, when the server withheld
// the token, deletes the stale authorization and authorizes again from
// scratch. The one-time password, if supplied, is attached only to the
// delete request.
func (s *Service) authorizeAndRecreate(ctx context.Context, user users.User, base *transport.Descriptor, request *signInRequest) (*clients.Client, *clients.Authorization, error) {
	client, authorization, err := s.authorize(ctx, user, base)
	if err != nil {
		return nil, nil, err
	}
	if authorization.HasToken() {
		return client, authorization, nil
	}

	s.logger.Debug().
		Int("authorization", authorization.ID).
		Msg("token withheld by server policy, deleting stale authorization")

	del := base.Clone()
	del.Method = transport.MethodDelete
	del.Path = fmt.Sprintf("authorizations/%d", authorization.ID)
	if request.oneTimePassword != "" {
		del.WithHeader(transport.OneTimePasswordHeader, request.oneTimePassword)
	}

	if _, err := s.requester.Enqueue(ctx, client.Server, del); err != nil {
		return nil, nil, errors.Wrap(err, "[Service.authorizeAndRecreate] delete stale authorization")
	}

	return s.authorize(ctx, user, base)
}

// remapTerminal converts classified transport failures into the workflow's
// terminal errors. The not-found disambiguation deliberately keys off the
// presence of scope context in the error payload; see the remote service's
// error format.
func remapTerminal(err error) error {
	classified, ok := transport.AsError(err)
	if !ok {
		return err
	}
	switch {
	case classified.Code == transport.CodeOneTimePasswordRequired:
		return ErrTwoFactorRequired
	case classified.HTTPStatus == http.StatusNotFound && classified.ScopesMentioned:
		return ErrTokenUnsupportedByServer
	case classified.HTTPStatus == http.StatusNotFound:
		return ErrServerVersionUnsupported
	default:
		return err
	}
}
