package config

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger. Development mode gets
// the human-readable encoder.
func NewLogger(cfg *AppConfig) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
