package elsql

import (
	"os"

	"github.com/rs/zerolog"
)

// NewCLILogger builds the console-formatted, leveled logger the
// `elsql` CLI uses for diagnostics (config/ignore-file parse failures,
// per-resource warnings during `elsql validate`). The core library
// (everything else in this package) never logs — rendering and parsing
// stay pure; logging is CLI-only plumbing.
func NewCLILogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
