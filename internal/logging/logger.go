// Package logging builds the categorized zap loggers used by mealplan.
// Logging is controlled by logging.debug_mode in the config file (or the
// --verbose flag): when both are off every category gets a no-op logger, so
// normal runs write nothing but command output.
package logging

import (
	"fmt"
	"io"

	"mealplan/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot        Category = "boot"        // Config loading, logger setup
	CategoryCLI         Category = "cli"         // Command dispatch and exit codes
	CategoryContracts   Category = "contracts"   // Boundary parsing
	CategoryApplication Category = "application" // Use case execution
	CategoryOutput      Category = "output"      // Rendering and writing results
)

// Logger hands out per-category zap loggers for one invocation.
type Logger struct {
	base    *zap.Logger
	cfg     config.LoggingConfig
	closeFn func()
}

// New builds the invocation logger. Log lines go to cfg.File when set,
// otherwise to fallback. Every line carries the invocation id.
func New(cfg config.LoggingConfig, fallback io.Writer) (*Logger, error) {
	l := &Logger{cfg: cfg, closeFn: func() {}}
	if !cfg.Active() {
		l.base = zap.NewNop()
		return l, nil
	}

	level, err := zapcore.ParseLevel(cfg.EffectiveLevel())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	var sink zapcore.WriteSyncer
	if cfg.File != "" {
		ws, closeFn, err := zap.Open(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink, l.closeFn = ws, closeFn
	} else {
		sink = zapcore.AddSync(fallback)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))
	l.base = zap.New(core).With(zap.String("invocation_id", uuid.NewString()))
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zap.NewNop(), closeFn: func() {}}
}

// Enabled reports whether category produces output.
func (l *Logger) Enabled(category Category) bool {
	return l.cfg.IsCategoryEnabled(string(category))
}

// Get returns the logger for category, or a no-op logger if the category
// is disabled.
func (l *Logger) Get(category Category) *zap.Logger {
	if !l.Enabled(category) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// Close flushes buffered entries and releases the log file, if any.
func (l *Logger) Close() {
	_ = l.base.Sync()
	l.closeFn()
}
