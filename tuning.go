package bigint

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/nat"
)

func init() {
	applyTuning(config.Load())
}

// applyTuning installs a resolved tuning. A configuration error is reported
// on stderr and the defaults carried in t are used instead.
func applyTuning(t config.Tuning, err error) {
	if err != nil {
		logging.NewDefaultLogger().Error("bigint: ignoring invalid tuning configuration", err)
	}
	nat.SetKaratsubaThreshold(t.KaratsubaThreshold)

	lvl, _ := t.Level()
	if lvl == zerolog.Disabled {
		return
	}
	zl := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("component", "bigint").Logger()
	setLogger(logging.NewZerologAdapter(zl))
	logger().Debug("tuning applied",
		logging.Int("karatsuba_threshold", t.KaratsubaThreshold),
		logging.String("cpu", config.DetectCPUFeatures().String()))
}
