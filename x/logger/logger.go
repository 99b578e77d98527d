// Package logger exposes the process-wide structured logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Log is the shared logger, written to stderr in a human-readable console
// format. Callers attach fields with .With()... rather than constructing
// their own zerolog.Logger.
var Log = zlog.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
