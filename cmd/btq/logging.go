package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/btq/pkg/config"
)

// configureLogger creates a logger from the --log-level flag and the
// loaded config, with the flag taking precedence. The config default is
// panic level, essentially silent for normal operations.
func configureLogger(cmd *cobra.Command, cfg *config.Config) (*logrus.Logger, error) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	if logLevelStr == "" {
		return cfg.NewLogger()
	}

	logLevel := logrus.PanicLevel
	switch logLevelStr {
	case "debug":
		logLevel = logrus.DebugLevel
	case "info":
		logLevel = logrus.InfoLevel
	case "warn":
		logLevel = logrus.WarnLevel
	case "error":
		logLevel = logrus.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", logLevelStr)
	}

	logger := logrus.New()
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return logger, nil
}
