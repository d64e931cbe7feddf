package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr)

var nodeLog bool
var serverLog bool

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

func InitLog(node, server bool) {
	nodeLog = node
	serverLog = server
}

// SetLogOutput redirects every log helper to out.
func SetLogOutput(out io.Writer) {
	logger = newLogger(out)
}

func ServerLog(format string, v ...any) {
	if serverLog {
		logger.Info().Str("component", "server").Msgf(format, v...)
	}
}

func NodeLog(role string, format string, v ...any) {
	if nodeLog {
		logger.Info().Str("component", role).Msgf(format, v...)
	}
}

func WarnLog(role string, format string, v ...any) {
	logger.Warn().Str("component", role).Msgf(format, v...)
}

func FailOnError(format string, err error, v ...any) {
	if err != nil {
		logger.Fatal().Err(err).Msgf(format, v...)
	}
}
