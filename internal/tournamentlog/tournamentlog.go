// Package tournamentlog wraps the standard logger with the bracketed-tag
// style the rest of the codebase uses for admin and bot-pool logging.
package tournamentlog

import "log"

// Printf logs a line tagged with [santorini], matching the bracketed
// prefix convention used throughout the bot-hoster logging.
func Printf(format string, args ...interface{}) {
	log.Printf("[santorini] "+format, args...)
}

// Fatalf logs a line tagged with [santorini] and exits the process.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("[santorini] "+format, args...)
}
