package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the shared logrus instance. JSON output so log
// aggregators can index the request fields added by the middleware.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
