package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecomonitor/internal/carbon"
)

type speciesFactor struct {
	Species string  `json:"species"`
	Factor  float64 `json:"factor"`
}

// NewSpeciesCmd creates the species command listing efficiency factors.
func NewSpeciesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "species",
		Short: "List species with a dedicated efficiency factor",
		Long: fmt.Sprintf("Lists the species the model knows. Any other species uses a factor of %.1f.",
			carbon.DefaultSpeciesFactor),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			known := carbon.KnownSpecies()
			factors := make([]speciesFactor, 0, len(known))
			for _, s := range known {
				factors = append(factors, speciesFactor{Species: s, Factor: carbon.SpeciesFactor(s)})
			}

			if asJSON {
				return printJSON(cmd, factors)
			}

			out := cmd.OutOrStdout()
			for _, f := range factors {
				fmt.Fprintf(out, "%-26s %.1f\n", f.Species, f.Factor)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
