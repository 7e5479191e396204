package internal

import (
	"os"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is the tool name used in logs and config lookups.
	DefaultAppName = "rgen"

	// DefaultResourcesDir is the directory scanned for resource files when
	// no other directory is configured.
	DefaultResourcesDir = "resources"

	// DefaultPackageName is the package clause of the generated source when
	// no other name is configured.
	DefaultPackageName = "resources"

	// DefaultOutputFile is where the generated source is written when no
	// other destination is configured. It deliberately lives outside the
	// resources directory so a second run does not pick it up as a resource.
	DefaultOutputFile = "r_gen.go"
)

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
