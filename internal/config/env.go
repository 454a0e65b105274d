// Package config provides shared configuration utilities: environment
// lookups and the optional YAML settings file.
package config

import "os"

// Environment variables shared by the binaries.
const (
	EnvSettingsPath = "SPAAACE_CONFIG"
	EnvLogLevel     = "SPAAACE_LOG_LEVEL"
	EnvLogFile      = "SPAAACE_LOG_FILE"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FromEnv loads the settings file named by SPAAACE_CONFIG (if any) and
// applies a SPAAACE_LOG_LEVEL override.
func FromEnv() (Settings, error) {
	s, err := LoadFile(GetEnv(EnvSettingsPath, ""))
	if err != nil {
		return Settings{}, err
	}
	s.LogLevel = GetEnv(EnvLogLevel, s.LogLevel)
	return s, nil
}
