package collections

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{"component": "collections"})

// SetLogger replaces the package logger. It must not be called while other
// goroutines use the package.
func SetLogger(l *log.Entry) {
	if l != nil {
		logger = l
	}
}
