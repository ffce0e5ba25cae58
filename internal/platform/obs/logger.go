package obs

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as zap's global.
// Development uses the human-readable console encoder; everything else logs JSON.
func NewLogger(appEnv string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if appEnv == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	zap.ReplaceGlobals(logger.Named("commute-estimator"))
	return zap.L(), nil
}
