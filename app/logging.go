package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pids/config"
)

// NewLogger builds a zap logger writing to stderr: JSON production encoding
// for format "json", the development console encoder otherwise.
func NewLogger(c config.Log) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level

	return zc.Build()
}
