// Package logger builds the zap loggers used by the command line tools.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Debug bool
}

// NewLogger returns a console logger writing to stderr. Without Debug only
// warnings and errors are emitted, so tool output on stdout stays clean.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if cfg.Debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	zapConfig := zap.Config{
		Level:             level,
		Development:       cfg.Debug,
		DisableStacktrace: !cfg.Debug,
		Encoding:          "console",
		EncoderConfig:     encCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	return zapConfig.Build()
}
