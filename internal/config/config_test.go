package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/bigint/internal/errors"
)

// Tests in this file mutate the process environment and therefore do not
// run in parallel.

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bigint.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPrefix+"CONFIG", "")
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.KaratsubaThreshold < MinKaratsubaThreshold {
		t.Errorf("KaratsubaThreshold = %d, want adaptive estimate", got.KaratsubaThreshold)
	}
	if lvl, _ := got.Level(); lvl != zerolog.Disabled {
		t.Errorf("Level = %v, want disabled", lvl)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"CONFIG", "")
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "64")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "debug")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.KaratsubaThreshold != 64 {
		t.Errorf("KaratsubaThreshold = %d, want 64", got.KaratsubaThreshold)
	}
	if lvl, _ := got.Level(); lvl != zerolog.DebugLevel {
		t.Errorf("Level = %v, want debug", lvl)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeTOML(t, "karatsuba_threshold = 32\nlog_level = \"info\"\n")
	t.Setenv(EnvPrefix+"CONFIG", path)
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "warn")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.KaratsubaThreshold != 32 {
		t.Errorf("KaratsubaThreshold = %d, want 32 from file", got.KaratsubaThreshold)
	}
	if got.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want env value warn", got.LogLevel)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		threshold string
		level     string
	}{
		{name: "non-numeric threshold", threshold: "fast"},
		{name: "threshold below minimum", threshold: "2"},
		{name: "threshold overflows int", threshold: "99999999999999999999"},
		{name: "unknown level", level: "chatty"},
		{name: "unknown file key", file: "fft_threshold = 10\n"},
		{name: "malformed file", file: "karatsuba_threshold = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := ""
			if tt.file != "" {
				cfgPath = writeTOML(t, tt.file)
			}
			t.Setenv(EnvPrefix+"CONFIG", cfgPath)
			t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", tt.threshold)
			t.Setenv(EnvPrefix+"LOG_LEVEL", tt.level)

			got, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if got != Default() {
				t.Errorf("Load() fallback = %+v, want defaults %+v", got, Default())
			}
		})
	}
}

func TestValidateConfigErrorType(t *testing.T) {
	err := Tuning{KaratsubaThreshold: 3}.Validate()
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() error = %v, want ConfigError", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFile on a missing path succeeded")
	}
}

func TestEstimateKaratsubaThreshold(t *testing.T) {
	tests := []struct {
		name string
		f    CPUFeatures
		want int
	}{
		{"baseline", CPUFeatures{}, 40},
		{"mulx and adx", CPUFeatures{ADX: true, BMI2: true}, 48},
		{"arm64", CPUFeatures{ASIMD: true}, 40},
	}
	if 32<<(^uint(0)>>63) == 32 {
		t.Skip("estimates differ on 32-bit platforms")
	}
	for _, tt := range tests {
		if got := EstimateKaratsubaThreshold(tt.f); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestApplyAdaptiveThresholdsKeepsExplicit(t *testing.T) {
	got := ApplyAdaptiveThresholds(Tuning{KaratsubaThreshold: 100})
	if got.KaratsubaThreshold != 100 {
		t.Errorf("explicit threshold replaced: %d", got.KaratsubaThreshold)
	}
}

func TestCPUFeaturesString(t *testing.T) {
	if got := (CPUFeatures{}).String(); got != "none" {
		t.Errorf("empty features = %q", got)
	}
	if got := (CPUFeatures{ADX: true, AVX2: true}).String(); got != "adx,avx2" {
		t.Errorf("String() = %q", got)
	}
	t.Logf("detected: %s", DetectCPUFeatures())
}
