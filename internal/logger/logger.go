// Package logger configures the global zerolog logger for the service.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global log level and output format. Unknown level strings
// fall back to info. When pretty is true, output goes through the console
// writer instead of raw JSON.
func Init(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithContext returns the global logger extended with the given fields.
func WithContext(fields map[string]interface{}) zerolog.Logger {
	logger := log.Logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}
