package config

import (
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// LogConfig comes from the environment.
type LogConfig struct {
	Level  string `env:"HEADSUP_LOG_LEVEL" envDefault:"info"`
	Format string `env:"HEADSUP_LOG_FORMAT" envDefault:"text"`
}

// LoadLog reads the log settings from the process environment.
func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// LoadLogFrom reads the log settings from the given variables only.
func LoadLogFrom(environ map[string]string) (LogConfig, error) {
	var cfg LogConfig
	err := env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	return cfg, err
}

// NewLogger builds the root logger.
func (c LogConfig) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var formatter log.Formatter
	switch c.Format {
	case "", "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "headsup",
	}), nil
}
