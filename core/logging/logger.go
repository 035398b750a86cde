package logging

import (
	"go.uber.org/zap"
)

// Logger is the package-wide logger used by the SDK.
// It defaults to a production zap logger and can be replaced with SetLogger.
var Logger *zap.Logger

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	Logger = logger
}

// SetLogger replaces the SDK-wide logger. Passing nil installs a no-op logger.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	Logger = logger
}
