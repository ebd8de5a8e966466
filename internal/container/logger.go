package container

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger. "json" gives production output, anything
// else the human-readable development console output.
func NewLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config := zap.NewDevelopmentConfig()
	if format == "json" {
		config = zap.NewProductionConfig()
	}

	config.Level = lvl

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
