package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewSugaredLogger() *zap.SugaredLogger {
	level := zap.NewAtomicLevel()
	level.SetLevel(zapcore.InfoLevel)

	cfg := zap.Config{
		Level:             level,
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "Msg",
			LevelKey:       "Level",
			TimeKey:        "Time",
			NameKey:        "Name",
			CallerKey:      "Caller",
			StacktraceKey:  "St",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := cfg.Build()
	return logger.Sugar()
}
