package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var errLogFormat = errors.New("assoc: unsupported log format")

// LogConfig selects the level, the encoding and the sink of the CLI logger.
// An empty Filename logs to stderr.
type LogConfig struct {
	Level      string
	Debug      bool
	Format     string
	Filename   string
	MaxSize    int
	MaxDays    int
	MaxBackups int
}

func defaultLogConfig() LogConfig {
	return LogConfig{Level: "info", Format: "console", MaxSize: 512}
}

func newLogger(cfg LogConfig) (*zap.Logger, error) {
	lvl := cfg.Level
	if cfg.Debug {
		lvl = "debug"
	}
	level, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", lvl, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch cfg.Format {
	case "", "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Format, errLogFormat)
	}

	sink := zapcore.Lock(os.Stderr)
	if cfg.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}
	return zap.New(zapcore.NewCore(enc, sink, level)), nil
}
