package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"ecomonitor/internal/airquality"
)

// NewClassifyCmd creates the classify command group.
func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify pollutant concentrations and AQI values",
	}

	cmd.AddCommand(newClassifyPollutantCmd(), newClassifyAQICmd())

	return cmd
}

func newClassifyPollutantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pollutant <type> <value>",
		Short: "Status of a pollutant concentration in µg/m³",
		Example: `  ecocarbon classify pollutant pm25 40
  ecocarbon classify pollutant no2 15`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[1])
			if err != nil {
				return err
			}
			t := airquality.PollutantType(args[0])
			if _, ok := airquality.ThresholdsFor(t); !ok {
				cmd.PrintErrf("unknown pollutant %q, using pm25 limits\n", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), airquality.ClassifyPollutant(value, t))
			return nil
		},
	}
}

func newClassifyAQICmd() *cobra.Command {
	return &cobra.Command{
		Use:     "aqi <index>",
		Short:   "Status of an AQI value on the 1..5 scale",
		Example: `  ecocarbon classify aqi 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, airquality.ClassifyAQI(value))
			if value == math.Trunc(value) {
				if d, ok := airquality.DescribeAQI(int(value)); ok {
					fmt.Fprintf(out, "%s: %s\n", d.Label, d.Implication)
				}
			}
			return nil
		},
	}
}

func parseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	return v, nil
}
