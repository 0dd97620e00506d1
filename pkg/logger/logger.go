// Package logger provides the process-wide structured logger.
//
// Events that belong to the simulation itself go into the snapshot's own
// log; this logger carries diagnostics around it (CLI, generation,
// replay tooling).
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance.
var Log = logrus.New()

// Init configures Log from the environment. LOG_LEVEL selects verbosity
// (debug, info, warn, error; default info) and LOG_FORMAT=json switches
// to JSON output.
func Init() {
	Log.SetOutput(os.Stderr)

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
