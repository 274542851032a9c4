package config

import (
	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. Unknown level names fall back
// to info rather than failing startup.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}
