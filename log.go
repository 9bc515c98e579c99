package sitebook

import (
	"os"

	"github.com/rs/zerolog"
)

// logger emits the engine's diagnostics: skipped malformed records and
// ambiguous assignments. Malformed input is never fatal, it is logged here
// and the batch continues.
var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "sitebook").Logger()

// SetLogger replaces the engine's diagnostic logger. Tests use it to capture
// or silence skip warnings.
func SetLogger(l zerolog.Logger) { logger = l }
