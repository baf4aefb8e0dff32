package ssp

import "log"

// verboseLogger adapts the standard library *log.Logger to the Logger
// interface; it is already satisfied structurally, this constructor
// just names the default instance WithVerbose installs when the caller
// did not also supply WithLogger.
func defaultVerboseLogger() Logger {
	return log.Default()
}
