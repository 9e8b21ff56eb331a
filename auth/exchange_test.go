package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ron-haley/go-github-auth/clients"
	"github.com/ron-haley/go-github-auth/servers"
	"github.com/ron-haley/go-github-auth/users"
	"github.com/stretchr/testify/require"
)

// tokenEndpoint serves a GitHub-style access_token response and records the
// exchanged code.
func tokenEndpoint(t *testing.T, token string, gotCode *string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		*gotCode = r.FormValue("code")
		w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
		w.Write([]byte("access_token=" + token + "&token_type=bearer"))
	})
	return httptest.NewServer(mux)
}

func TestExchangeCode(t *testing.T) {
	var gotCode string
	ts := tokenEndpoint(t, "gho_abc123", &gotCode)
	defer ts.Close()

	f := setupTestFixture(t)
	server := servers.Server{BaseWebURL: ts.URL, APIEndpoint: ts.URL}

	token, err := f.service.ExchangeCode(context.Background(), server, "code-1")
	require.NoError(t, err)
	require.Equal(t, "gho_abc123", token)
	require.Equal(t, "code-1", gotCode)
}

func TestExchangeCode_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	f := setupTestFixture(t)
	server := servers.Server{BaseWebURL: ts.URL, APIEndpoint: ts.URL}

	_, err := f.service.ExchangeCode(context.Background(), server, "bad-code")
	require.Error(t, err)
}

func TestSignInWithWebBrowser(t *testing.T) {
	var gotCode string
	ts := tokenEndpoint(t, "gho_abc123", &gotCode)
	defer ts.Close()

	f := setupTestFixture(t)
	f.states = []string{"state-1"}
	server := servers.Server{BaseWebURL: ts.URL, APIEndpoint: ts.URL}

	// deliver the callback once the browser has been "opened"
	go func() {
		for f.broadcaster.Pending() == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		_ = f.broadcaster.PublishString("app://oauth?state=state-1&code=code-1")
	}()

	user := users.New(testLogin, server)
	client, err := f.service.SignInWithWebBrowser(context.Background(), user, clients.Scopes{clients.ScopeRepo})
	require.NoError(t, err)
	require.Equal(t, "gho_abc123", client.Token)
	require.Equal(t, "code-1", gotCode)
}
