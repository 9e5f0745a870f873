package hvac_sizing

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.SugaredLogger
	baseLogger *zap.Logger
	loggerMu   sync.Mutex
)

// InitLogger initializes the package-level logger.
func InitLogger(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	baseLogger = zapLogger
	logger = zapLogger.Sugar()
	return nil
}

// GetSugaredLogger returns the sugared logger, falling back to a no-op logger
// when InitLogger has not been called (library use, tests).
func GetSugaredLogger() *zap.SugaredLogger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		baseLogger = zap.NewNop()
		logger = baseLogger.Sugar()
	}
	return logger
}

// SyncLogger flushes any buffered log entries.
func SyncLogger() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
}
