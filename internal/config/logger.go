package config

import (
	"io" // Closer for the log file
	"os" // Log file handling

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// SetupLogger applies the formatter, level and destination from cfg. The
// returned closer releases the log file, if one was opened.
func SetupLogger(cfg *Config) (io.Closer, error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel // Unknown names fall back to the default
	}
	logrus.SetLevel(level)
	if cfg.LogFile == "" {
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(f)
	return f, nil
}
