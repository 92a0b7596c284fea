package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command of the ecocarbon CLI.
func NewRootCmd(ver string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "ecocarbon",
		Short:        "Plant carbon sequestration and air quality calculator",
		Long:         "ecocarbon estimates the CO2 absorbed by plant collections and classifies air quality readings.",
		Version:      ver,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd, debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		NewSequestrationCmd(),
		NewEquivalentsCmd(),
		NewClassifyCmd(),
		NewSpeciesCmd(),
	)

	return cmd
}

// setupLogging sends logs to stderr so command output stays parseable.
func setupLogging(cmd *cobra.Command, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	out := cmd.ErrOrStderr()
	if f, ok := out.(*os.File); ok {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: f})
		return
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
