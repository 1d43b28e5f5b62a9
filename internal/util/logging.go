// Package util provides common utilities shared across the application,
// currently logging helpers.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// Warnf logs a formatted diagnostic message.
func Warnf(format string, args ...interface{}) {
	log.Printf("warning: "+format, args...)
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
