package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ecomonitor/internal/carbon"
	"ecomonitor/internal/plantfile"
)

type collectionReport struct {
	ID          string                     `json:"id"`
	Result      carbon.SequestrationResult `json:"result"`
	Equivalents carbon.OffsetEquivalents   `json:"equivalents"`
	Predictions []carbon.Prediction        `json:"predictions"`
}

// NewSequestrationCmd creates the sequestration command.
func NewSequestrationCmd() *cobra.Command {
	var (
		file     string
		years    int
		asJSON   bool
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "sequestration",
		Short: "Compute yearly CO2 sequestration of plant collections",
		Example: `  # Totals of every collection in a file
  ecocarbon sequestration -f plants.yaml

  # With a five year projection as JSON
  ecocarbon sequestration -f plants.yaml --years 5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if years < 0 {
				return &carbon.ValidationError{Field: "years", Err: carbon.ErrInvalidYears}
			}
			return runSequestration(cmd, file, years, parallel, asJSON)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with plant collections")
	cmd.Flags().IntVar(&years, "years", 0, "number of years to project")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().IntVar(&parallel, "parallel", carbon.DefaultBatchConcurrency, "collections computed at once")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSequestration(cmd *cobra.Command, file string, years, parallel int, asJSON bool) error {
	collections, err := plantfile.Load(file)
	if err != nil {
		return err
	}
	log.Debug().Int("collections", len(collections)).Str("file", file).Msg("plant file loaded")

	results, err := carbon.ComputeBatch(cmd.Context(), collections, parallel)
	if err != nil {
		return fmt.Errorf("computing sequestration: %w", err)
	}

	reports := make([]collectionReport, 0, len(results))
	for _, r := range results {
		projection, err := carbon.PredictFutureSequestration(r.Result, years)
		if err != nil {
			return err
		}
		equivalents := carbon.ComputeOffsetEquivalents(r.Result.Total)
		if err := carbon.ValidateResult(r.Result, equivalents, projection); err != nil {
			return fmt.Errorf("collection %q: %w", r.ID, err)
		}
		reports = append(reports, collectionReport{
			ID:          r.ID,
			Result:      r.Result,
			Equivalents: equivalents,
			Predictions: projection.Predictions,
		})
	}

	if asJSON {
		return printJSON(cmd, reports)
	}

	out := cmd.OutOrStdout()
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Collection %s: %s\n", r.ID, r.Result.FormattedTotal)
		for _, b := range r.Result.Breakdown {
			fmt.Fprintf(out, "  %-20s %s\n", plantLabel(b), carbon.FormatKgPerYear(b.Sequestration))
		}
		if r.Equivalents.DisplayText != "" {
			fmt.Fprintf(out, "  %s\n", r.Equivalents.DisplayText)
		}
		for _, p := range r.Predictions {
			fmt.Fprintf(out, "  year %-3d %s\n", p.Year, p.FormattedValue)
		}
	}
	return nil
}

func plantLabel(b carbon.PlantSequestration) string {
	if b.PlantName != "" {
		return b.PlantName
	}
	return b.PlantID
}
