package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the process logger. Debug tracing goes to stderr so it
// never mixes with the report on stdout; without the debug flag the
// logger discards everything.
func New(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}
