package logging

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a file-backed JSON logger. The TUI owns the terminal, so all
// logging goes to the file at path; stdout and stderr stay untouched.
// The returned flush function should be deferred by the caller.
// When the file cannot be opened logging is discarded rather than failing
// the program.
func New(path string, verbosity int) (logr.Logger, func()) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), func() {}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	// zapr maps logr V-levels onto negative zap levels.
	level := zapcore.Level(-verbosity)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(f),
		zap.NewAtomicLevelAt(level),
	)

	z := zap.New(core)
	logger := zapr.NewLogger(z)

	return logger, func() {
		_ = z.Sync()
		_ = f.Close()
	}
}
