package servers_test

import (
	"testing"

	"github.com/ron-haley/go-github-auth/servers"
	"github.com/stretchr/testify/require"
)

func TestDotcom(t *testing.T) {
	s := servers.Dotcom()
	require.Equal(t, "https://github.com", s.BaseWebURL)
	require.Equal(t, "https://api.github.com", s.APIEndpoint)
}

func TestNewEnterprise(t *testing.T) {
	t.Run("trims trailing slashes", func(t *testing.T) {
		s := servers.NewEnterprise("https://git.example.com//")
		require.Equal(t, "https://git.example.com", s.BaseWebURL)
		require.Equal(t, "https://git.example.com/api/v3", s.APIEndpoint)
	})

	t.Run("keeps clean base unchanged", func(t *testing.T) {
		s := servers.NewEnterprise("http://git.example.com")
		require.Equal(t, "http://git.example.com", s.BaseWebURL)
		require.Equal(t, "http://git.example.com/api/v3", s.APIEndpoint)
	})
}

func TestServer_Secure(t *testing.T) {
	t.Run("upgrades http", func(t *testing.T) {
		s := servers.NewEnterprise("http://git.example.com")
		secure := s.Secure()
		require.Equal(t, "https://git.example.com", secure.BaseWebURL)
		require.Equal(t, "https://git.example.com/api/v3", secure.APIEndpoint)

		// the original value is untouched
		require.Equal(t, "http://git.example.com", s.BaseWebURL)
	})

	t.Run("https is a no-op", func(t *testing.T) {
		s := servers.Dotcom()
		require.Equal(t, s, s.Secure())
	})
}
