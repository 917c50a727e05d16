package cli

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guliveer/sysinfo/internal/config"
)

// NewLogger creates a zap logger from the logging configuration.
// Console output goes to stderr so it never mixes with rendered output; a
// JSON log file is added when one is configured and can be opened.
// The returned func flushes the logger and closes the log file.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, func()) {
	return newLogger(cfg, zapcore.Lock(os.Stderr))
}

func newLogger(cfg config.LoggingConfig, console zapcore.WriteSyncer) (*zap.Logger, func()) {
	var level zapcore.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		console,
		level,
	)

	cores := []zapcore.Core{consoleCore}

	var file *os.File
	var openErr error
	if cfg.File != "" {
		file, openErr = os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if openErr == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if openErr != nil {
		logger.Warn("Cannot open log file, logging to console only",
			zap.String("path", cfg.File),
			zap.Error(openErr))
	}

	cleanup := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, cleanup
}
