// Package logutil builds the zap loggers used by the dynmst application
// layer. Library packages (core, dsu, prim_kruskal, builder) never log.
package logutil

import (
	"io"
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultLogLevel is used when Config.Level is empty.
const DefaultLogLevel = "info"

// Config serializes log related config in toml/json.
type Config struct {
	// Log level: one of "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level"`
	// Format of the log, one of `text` or `json`.
	Format string `toml:"format" json:"format"`
	// DisableTimestamp drops the time field, handy for golden tests.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
}

// ParseLevel converts a textual level into a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		level = DefaultLogLevel
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return l, errors.Annotatef(err, "invalid log level %q", level)
	}
	return l, nil
}

// Valid checks level and format.
func (c *Config) Valid() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Format {
	case "", FormatText, FormatJSON:
		return nil
	default:
		return errors.Errorf("invalid log format %q, expect %q or %q", c.Format, FormatText, FormatJSON)
	}
}

// InitLogger builds a logger writing to w according to cfg.
func InitLogger(cfg *Config, w io.Writer) (*zap.Logger, error) {
	if err := cfg.Valid(); err != nil {
		return nil, errors.Trace(err)
	}
	level, _ := ParseLevel(cfg.Level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.DisableTimestamp {
		encCfg.TimeKey = ""
	}
	var enc zapcore.Encoder
	if cfg.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}
