package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ron-haley/go-github-auth/servers"
	"github.com/rs/zerolog"
)

const contentTypeJSON = "application/json; charset=utf-8"

// HTTPRequester is the default Requester on net/http. It classifies failures
// into *Error values and performs no retries.
type HTTPRequester struct {
	client *http.Client
	logger zerolog.Logger
}

// HTTPOption configures an HTTPRequester.
type HTTPOption func(*HTTPRequester)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(r *HTTPRequester) {
		r.client = client
	}
}

// WithLogger attaches a request logger (zerolog.Nop by default).
func WithLogger(logger zerolog.Logger) HTTPOption {
	return func(r *HTTPRequester) {
		r.logger = logger
	}
}

// NewHTTPRequester creates a requester backed by http.DefaultClient unless
// overridden with WithHTTPClient.
func NewHTTPRequester(options ...HTTPOption) *HTTPRequester {
	r := &HTTPRequester{
		client: http.DefaultClient,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

var _ Requester = (*HTTPRequester)(nil)

// Enqueue resolves the descriptor against the server's API endpoint, issues
// it, and returns the raw response or a classified *Error.
func (r *HTTPRequester) Enqueue(ctx context.Context, server servers.Server, descriptor *Descriptor) (*Response, error) {
	u, err := r.resolveURL(server, descriptor)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if descriptor.Method != MethodGet && len(descriptor.Parameters) > 0 {
		payload, err := json.Marshal(descriptor.Parameters)
		if err != nil {
			return nil, &Error{Code: CodeTransport, Message: "encode parameters", Err: err}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, string(descriptor.Method), u.String(), body)
	if err != nil {
		return nil, &Error{Code: CodeTransport, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", AcceptHeader)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	for key, value := range descriptor.Headers {
		req.Header.Set(key, value)
	}

	r.logger.Debug().
		Str("method", string(descriptor.Method)).
		Str("path", descriptor.Path).
		Msg("issuing request")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, classifyTransportFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: CodeTransport, HTTPStatus: resp.StatusCode, Message: "read response body", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		classified := classifyResponse(resp, data)
		r.logger.Debug().
			Int("status", resp.StatusCode).
			Str("code", string(classified.Code)).
			Msg("request failed")
		return nil, classified
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (r *HTTPRequester) resolveURL(server servers.Server, descriptor *Descriptor) (*url.URL, error) {
	endpoint := strings.TrimRight(server.APIEndpoint, "/") + "/" + strings.TrimLeft(descriptor.Path, "/")
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &Error{Code: CodeTransport, Message: fmt.Sprintf("parse endpoint %q", endpoint), Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &Error{
			Code:    CodeUnsupportedScheme,
			Message: fmt.Sprintf("unsupported URL scheme %q", u.Scheme),
		}
	}
	if descriptor.Method == MethodGet && len(descriptor.Parameters) > 0 {
		query := u.Query()
		for key, value := range descriptor.Parameters {
			query.Set(key, value)
		}
		u.RawQuery = query.Encode()
	}
	return u, nil
}

func classifyTransportFailure(err error) *Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && strings.Contains(urlErr.Error(), "unsupported protocol scheme") {
		return &Error{Code: CodeUnsupportedScheme, Message: "unsupported URL scheme", Err: err}
	}
	return &Error{Code: CodeTransport, Message: "request failed", Err: err}
}

// apiError is the error payload shape of GitHub-style APIs.
type apiError struct {
	Message string `json:"message"`
	Errors  []struct {
		Resource string `json:"resource"`
		Field    string `json:"field"`
		Code     string `json:"code"`
	} `json:"errors"`
	DocumentationURL string `json:"documentation_url"`
}

func classifyResponse(resp *http.Response, body []byte) *Error {
	var payload apiError
	_ = json.Unmarshal(body, &payload)

	classified := &Error{
		Code:       CodeTransport,
		HTTPStatus: resp.StatusCode,
		Message:    payload.Message,
	}
	if classified.Message == "" {
		classified.Message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized &&
		strings.Contains(strings.ToLower(resp.Header.Get(OneTimePasswordHeader)), "required") {
		classified.Code = CodeOneTimePasswordRequired
	}

	classified.ScopesMentioned = mentionsScopes(payload, resp.Header)
	return classified
}

// mentionsScopes preserves the remote service's heuristic: a failure is
// scope-related when scope headers are present or the payload talks about
// scopes.
func mentionsScopes(payload apiError, header http.Header) bool {
	if header.Get(OAuthScopesHeader) != "" || header.Get(AcceptedOAuthScopesHeader) != "" {
		return true
	}
	if strings.Contains(strings.ToLower(payload.Message), "scope") {
		return true
	}
	for _, item := range payload.Errors {
		if strings.Contains(item.Code, "scope") || strings.Contains(item.Field, "scope") {
			return true
		}
	}
	return false
}
