package puppet

import "log"

// SetDebug toggles debug logging for catalog lookups. Debug output goes
// through the standard log package.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// globalDebug is a plain bool, not atomic: flip it at process start, not
// mid-render.
var globalDebug bool

// debugf logs when debug mode is on.
func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("puppet: "+format, args...)
	}
}
