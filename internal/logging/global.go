package logging

import "github.com/sirupsen/logrus"

// defaultLogger is what packages pick up via GetLogger before the host has
// configured anything.
var defaultLogger Logger = NewLogrusAdapterFromLogger(nil)

// GetLogger returns the process-wide default logger. Packages capture it in
// a package-level variable and expose SetLogger for override.
func GetLogger() Logger {
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// SetAllLogLevels sets the global logrus level, affecting every logrus
// instance that has not pinned its own level.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
