// internal/pkg/logger/logger.go
package logger

import (
	"time"

	"github.com/beammart/backend/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the application logger from config. One instance is created at
// startup and injected everywhere a component needs to log.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
