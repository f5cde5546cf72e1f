// Package config provides shared configuration utilities and game tunables.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by key.
// ok is false when the variable is set but cannot be parsed; fallback is returned then.
func GetEnvInt(key string, fallback int) (value int, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set || raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, false
	}
	return v, true
}

// GetEnvFloat is the float64 counterpart of GetEnvInt.
func GetEnvFloat(key string, fallback float64) (value float64, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set || raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, false
	}
	return v, true
}
