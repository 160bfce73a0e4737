// Package logging holds the process-wide structured logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance. It is a no-op until Initialize
// is called, so packages may log freely before setup.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. Verbose enables debug-level,
// human-readable output; otherwise logs are structured JSON at info level.
func Initialize(verbose bool) error {
	var zapLogger *zap.Logger
	var err error
	if verbose {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zapLogger, err = config.Build()
	} else {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zapLogger, err = config.Build()
	}
	if err != nil {
		return err
	}
	Logger = zapLogger.Sugar()
	return nil
}
