// Package logging builds the zap logger shared by the engine packages.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a sugared zap logger. Mode "prod"/"production" selects
// the JSON production config; anything else gets the development
// console encoder.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Components accept it
// as a safe default so callers never need nil checks.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
