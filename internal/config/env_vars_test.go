package config_test

import (
	"testing"

	"github.com/ron-haley/go-github-auth/internal/config"
	"github.com/stretchr/testify/require"
)

func TestEnvVars(t *testing.T) {
	env := config.EnvVars{}

	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, "", env.GetClientID())
		require.Equal(t, "", env.GetClientSecret())
		require.Equal(t, ":8327", env.GetCallbackAddr())
		require.Equal(t, "ghauth", env.GetAppName())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GITHUB_CLIENT_ID", "app-id")
		t.Setenv("GITHUB_CLIENT_SECRET", "app-secret")
		t.Setenv("CALLBACK_ADDR", ":9000")

		require.Equal(t, "app-id", env.GetClientID())
		require.Equal(t, "app-secret", env.GetClientSecret())
		require.Equal(t, ":9000", env.GetCallbackAddr())
	})
}
