package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NOOPLogger discards everything. It is the default for servers built
// without a logger, tests included.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a human readable logger for local environments and a JSON
// production logger for everything else.
func New(env string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch env {
	case "", "local", "dev", "development", "test":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar().With("env", env), nil
}
