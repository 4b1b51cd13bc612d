package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	apperrors "github.com/agbru/bigint/internal/errors"
)

// EnvPrefix is the prefix shared by every environment variable read here.
const EnvPrefix = "BIGINT_"

// MinKaratsubaThreshold is the smallest accepted Karatsuba cut-over, in words.
const MinKaratsubaThreshold = 8

// Tuning holds the resolved engine settings.
type Tuning struct {
	// KaratsubaThreshold is the operand length in words at which
	// multiplication switches to Karatsuba. Zero selects a hardware estimate.
	KaratsubaThreshold int `toml:"karatsuba_threshold"`
	// LogLevel is a zerolog level name. Empty or "disabled" keeps the
	// engine silent until a logger is installed.
	LogLevel string `toml:"log_level"`
}

// Load resolves the tuning from the optional TOML file, the environment and
// the hardware estimate, in that order of increasing precedence for the
// first two. On error the returned Tuning still holds usable defaults.
func Load() (Tuning, error) {
	var t Tuning
	if path := getEnvString("CONFIG", ""); path != "" {
		ft, err := LoadFile(path)
		if err != nil {
			return Default(), err
		}
		t = ft
	}
	if err := applyEnvOverrides(&t); err != nil {
		return Default(), err
	}
	if err := t.Validate(); err != nil {
		return Default(), err
	}
	return ApplyAdaptiveThresholds(t), nil
}

// Default returns the tuning used when nothing is configured.
func Default() Tuning {
	return ApplyAdaptiveThresholds(Tuning{})
}

// LoadFile decodes a TOML tuning file. Unknown keys are rejected.
func LoadFile(path string) (Tuning, error) {
	var t Tuning
	meta, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Tuning{}, apperrors.WrapError(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Tuning{}, apperrors.NewConfigError("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return t, nil
}

// Validate checks explicit settings. Zero values mean "unset" and pass.
func (t Tuning) Validate() error {
	if t.KaratsubaThreshold != 0 && t.KaratsubaThreshold < MinKaratsubaThreshold {
		return apperrors.NewConfigError("karatsuba_threshold %d is below the minimum %d",
			t.KaratsubaThreshold, MinKaratsubaThreshold)
	}
	if _, err := t.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; the empty string maps to zerolog.Disabled.
func (t Tuning) Level() (zerolog.Level, error) {
	if t.LogLevel == "" {
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(t.LogLevel))
	if err != nil {
		return zerolog.Disabled, apperrors.NewConfigError("invalid log_level %q", t.LogLevel)
	}
	return lvl, nil
}
