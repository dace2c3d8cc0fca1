package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// setupLogger configures the logger from the verbose flag and the
// environment. Logs always go to stderr so stdout is left for results.
func (rcc *rootCmdConfig) setupLogger() error {
	rcc.log.Out = os.Stderr
	switch rcc.env.LogFormat {
	case "", "text":
		rcc.log.Formatter = &logrus.TextFormatter{}
	case "json":
		rcc.log.Formatter = &logrus.JSONFormatter{}
	default:
		return errors.Errorf("unknown log format %q", rcc.env.LogFormat)
	}
	if rcc.verbose {
		rcc.log.Level = logrus.DebugLevel
		return nil
	}
	level, err := logrus.ParseLevel(rcc.env.LogLevel)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	rcc.log.Level = level
	return nil
}

// fail logs err and exits with the given code.
func (rcc *rootCmdConfig) fail(code int, err error) {
	rcc.log.Error(err)
	os.Exit(code)
}
