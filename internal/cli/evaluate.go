package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
	"github.com/MikeSquared-Agency/Arbiter/internal/specs"
)

func newEvaluateCommand(opts *options) *cobra.Command {
	var matrixPath, specsPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score and rank alternatives",
		Example: `  arbiterctl evaluate --matrix criteria.csv --specs phones.csv
  arbiterctl evaluate -m criteria.csv -s phones.csv --format csv > ranking.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case "table", "csv", "json":
			default:
				return fmt.Errorf("unknown format %q (table|csv|json)", opts.format)
			}

			e, err := opts.evaluator(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			matrix, names, err := loadMatrix(matrixPath)
			if err != nil {
				return err
			}
			table, err := loadSpecs(specsPath)
			if err != nil {
				return err
			}
			if names != nil && len(table.Header) != len(names)+1 {
				table.Header = append([]string{"Alternative"}, names...)
			}

			eval, err := e.Evaluate(table, matrix)
			if err != nil {
				return err
			}
			ranked := eval.Ranked()

			out := cmd.OutOrStdout()
			switch opts.format {
			case "csv":
				return specs.WriteRanking(out, ranked)
			case "json":
				rec, _ := ahp.Recommend(ranked)
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					*ahp.Evaluation
					Ranking        []ahp.RankedAlternative `json:"ranking"`
					Recommendation ahp.Recommendation      `json:"recommendation"`
				}{eval, ranked, rec})
			default:
				renderEvaluation(out, eval, ranked, e.Threshold(), matrix.Warnings(ahp.ReciprocityTolerance))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&matrixPath, "matrix", "m", "", "Comparison matrix CSV file")
	cmd.Flags().StringVarP(&specsPath, "specs", "s", "", "Specs table CSV file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format (table|csv|json)")
	_ = cmd.MarkFlagRequired("matrix")
	_ = cmd.MarkFlagRequired("specs")
	return cmd
}

func newWeightsCommand(opts *options) *cobra.Command {
	var matrixPath string

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Derive criteria weights and check consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.evaluator(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			matrix, names, err := loadMatrix(matrixPath)
			if err != nil {
				return err
			}
			if names == nil {
				names = ahp.SpecsTable{}.Criteria(matrix.Dim())
			}

			weights, c, err := e.Weigh(matrix)
			if weights != nil {
				renderWeights(cmd.OutOrStdout(), names, weights, c, e.Threshold())
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&matrixPath, "matrix", "m", "", "Comparison matrix CSV file")
	_ = cmd.MarkFlagRequired("matrix")
	return cmd
}

func newRandomIndexCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "random-index",
		Short: "Print the random index table in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.evaluator(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			renderRandomIndex(cmd.OutOrStdout(), e.RandomIndex())
			return nil
		},
	}
}

func loadMatrix(path string) (ahp.ComparisonMatrix, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open matrix: %w", err)
	}
	defer f.Close()
	return specs.ReadMatrix(f)
}

func loadSpecs(path string) (ahp.SpecsTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return ahp.SpecsTable{}, fmt.Errorf("open specs: %w", err)
	}
	defer f.Close()
	return specs.ReadSpecs(f)
}
