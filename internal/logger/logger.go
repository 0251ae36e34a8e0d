package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Development       bool
	Encoding          string
	Level             string
	DisableCaller     bool
	DisableStacktrace bool
}

// New builds a zap logger from config. Unknown levels fall back to info.
func New(cfg *Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	zcfg.DisableCaller = cfg.DisableCaller
	zcfg.DisableStacktrace = cfg.DisableStacktrace

	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	} else {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return zcfg.Build()
}
