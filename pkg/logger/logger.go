package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger: human-readable console output in
// development, JSON everywhere else. The zerolog global is pointed at
// the same sink for libraries that use it.
func New(env string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if env == "development" || env == "" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}
