// Package diagnostics is the leveled logging façade used throughout this
// program, shaped after the teacher corpus's own ingest/log package: a thin
// wrapper over a structured logger with Error/Warn/Info/Debug helpers and a
// FatalCode-style helper for startup failures.
package diagnostics

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the program-wide diagnostic logger. Its default level is Warn;
// set SNIFFGLUE_LOG_LEVEL (e.g. "debug", "info") to override it.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if level := os.Getenv("SNIFFGLUE_LOG_LEVEL"); level != "" {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(parsed)
		}
	}

	return l
}

func Error(args ...interface{}) { Logger.Error(args...) }
func Warn(args ...interface{})  { Logger.Warn(args...) }
func Info(args ...interface{})  { Logger.Info(args...) }
func Debug(args ...interface{}) { Logger.Debug(args...) }

func Errorf(format string, args ...interface{}) { Logger.Errorf(format, args...) }
func Warnf(format string, args ...interface{})  { Logger.Warnf(format, args...) }
func Infof(format string, args ...interface{})  { Logger.Infof(format, args...) }
func Debugf(format string, args ...interface{}) { Logger.Debugf(format, args...) }

// FatalCode logs msg at Error level and exits the process with code, the
// same "log then os.Exit" shape the teacher's startup paths use instead of
// panicking.
func FatalCode(code int, msg string, args ...interface{}) {
	Logger.Errorf(msg, args...)
	os.Exit(code)
}
