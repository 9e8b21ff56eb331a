// Package config resolves the OAuth application settings from the
// environment for shells consuming the library.
package config

import "os"

const (
	clientIDVar     = "GITHUB_CLIENT_ID"
	clientSecretVar = "GITHUB_CLIENT_SECRET"
	callbackAddrVar = "CALLBACK_ADDR"
	appNameVar      = "APP_NAME"
)

type EnvVars struct{}

func (EnvVars) GetClientID() string {
	return GetEnv(clientIDVar, "")
}

func (EnvVars) GetClientSecret() string {
	return GetEnv(clientSecretVar, "")
}

// GetCallbackAddr returns the listen address of the local callback receiver.
func (EnvVars) GetCallbackAddr() string {
	return GetEnv(callbackAddrVar, ":8327")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "ghauth")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
