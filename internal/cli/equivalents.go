package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ecomonitor/internal/carbon"
)

// NewEquivalentsCmd creates the equivalents command.
func NewEquivalentsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "equivalents <kg>",
		Short:   "Express a CO2 mass in everyday terms",
		Example: `  ecocarbon equivalents 4600`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if err := carbon.ValidateAmount(amount); err != nil {
				return err
			}

			eq := carbon.ComputeOffsetEquivalents(amount)
			if err := carbon.ValidateEquivalents(eq); err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, eq)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Car miles:                %.0f\n", eq.CarMiles)
			fmt.Fprintf(out, "Home electricity months:  %.2f\n", eq.HomeElectricityMonths)
			fmt.Fprintf(out, "Tree years:               %.2f\n", eq.TreeYears)
			fmt.Fprintf(out, "Flight hours:             %.2f\n", eq.FlightHours)
			fmt.Fprintln(out, eq.DisplayText)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
