package bigint

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/agbru/bigint/internal/logging"
)

type loggerBox struct{ l logging.Logger }

var (
	activeLogger atomic.Pointer[loggerBox]
	nopLogger    logging.Logger = logging.NewZerologAdapter(zerolog.Nop())
)

// SetLogger installs l as the package logger. Entries carry debug detail
// about strategy selection and degenerate conventions. Pass zerolog.Nop() to
// silence the package again.
func SetLogger(l zerolog.Logger) {
	setLogger(logging.NewZerologAdapter(l))
}

func setLogger(l logging.Logger) {
	activeLogger.Store(&loggerBox{l: l})
}

func logger() logging.Logger {
	if b := activeLogger.Load(); b != nil {
		return b.l
	}
	return nopLogger
}
