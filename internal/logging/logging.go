package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/mines/internal/config"
)

// New builds the application logger. The terminal UI owns stdout, so unless a
// log file is configured, only plain mode gets console output (on stderr).
func New(cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if cfg.Development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if cfg.Log.File == "" {
		if cfg.UI.Plain {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.UI.Color})
		} else {
			log.SetOutput(io.Discard)
		}
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
	}
	log.SetOutput(io.Discard)
	log.AddHook(hook)

	return log, nil
}
