package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogging initializes the shared logger
func InitLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	if os.Getenv("GIN_MODE") == "release" {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}
}

// Infof logs info level messages
func Infof(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Warnf logs warning level messages
func Warnf(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// Errorf logs error level messages
func Errorf(format string, v ...interface{}) {
	log.Errorf(format, v...)
}
