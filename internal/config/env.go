// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"

	"fortio.org/safecast"

	apperrors "github.com/agbru/bigint/internal/errors"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// envOverride declares a single environment variable override. envKey is
// given without the BIGINT_ prefix.
type envOverride struct {
	envKey string
	apply  func(*Tuning, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"KARATSUBA_THRESHOLD", func(t *Tuning, v string) error {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return apperrors.NewConfigError("%sKARATSUBA_THRESHOLD: %q is not an integer", EnvPrefix, v)
		}
		n, err := safecast.Conv[int](parsed)
		if err != nil {
			return apperrors.NewConfigError("%sKARATSUBA_THRESHOLD: %v", EnvPrefix, err)
		}
		t.KaratsubaThreshold = n
		return nil
	}},
	{"LOG_LEVEL", func(t *Tuning, v string) error {
		t.LogLevel = v
		return nil
	}},
}

// applyEnvOverrides applies every set BIGINT_* variable to t.
func applyEnvOverrides(t *Tuning) error {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(t, val); err != nil {
				return err
			}
		}
	}
	return nil
}
