package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/train-timetable/config"
)

// InitLogging configures the global zerolog logger from cfg, writing to stdout.
func InitLogging(cfg config.LogConfig) {
	InitLoggingTo(os.Stdout, cfg)
}

// InitLoggingTo is InitLogging with an explicit output.
func InitLoggingTo(out io.Writer, cfg config.LogConfig) {
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
}
