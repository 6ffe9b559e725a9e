package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	logAdapter "github.com/bft-labs/bikeshare/internal/adapters/log"
)

// Logger returns the CLI console logger on stderr at info level.
// Callers lower or raise it once the configured level is known.
func Logger() zerolog.Logger {
	return logAdapter.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)
}
