// Package cli implements the footprint command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // zerolog context integration

// NewRootCmd creates the root footprint command with its subcommands.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "footprint",
		Short:   "Annual carbon footprint estimator",
		Long:    "Footprint estimates annual CO2e emissions from lifestyle inputs using regional emission factors.",
		Version: version,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			logger = setupLogging(debug)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to YAML config file")
	cmd.AddCommand(newEstimateCmd(), newFactorsCmd(), newServeCmd())

	return cmd
}

const rootCmdExample = `  # Estimate a global footprint from flags
  footprint estimate --electricity-kwh 300 --car-km 160 --diet average

  # Estimate an African footprint with a country grid factor
  footprint estimate --region africa --country KE --electricity-kwh 100 --diet typical

  # Estimate from a JSON input file, machine-readable output
  footprint estimate --input lifestyle.json --output json

  # Show the factor table resolved for Nigeria
  footprint factors --region africa --country NG

  # Run the HTTP API
  footprint serve --listen :8080`

// setupLogging configures the process-wide zerolog console writer.
func setupLogging(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
