// Package logging configures logrus for CLI use. Library packages accept a
// logger where they need one and default to the standard logger.
package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Setup configures and returns the standard logger. Level accepts the usual
// logrus names (debug, info, warn, error); jsonFormat switches the formatter
// from text to JSON.
func Setup(level string, jsonFormat bool) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)

	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger, nil
}
