// Package cli implements arbiterctl, which evaluates comparison matrices and
// specs tables stored as CSV files.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
)

type options struct {
	verbose     bool
	threshold   float64
	randomIndex []float64
	format      string
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) evaluator(w io.Writer) (*ahp.Evaluator, error) {
	var ri ahp.RandomIndexTable
	if len(o.randomIndex) > 0 {
		ri = ahp.RandomIndexTable(o.randomIndex)
		if err := ri.Validate(); err != nil {
			return nil, fmt.Errorf("--random-index: %w", err)
		}
	}
	if o.threshold <= 0 {
		return nil, fmt.Errorf("--threshold must be positive, got %g", o.threshold)
	}
	return ahp.NewEvaluator(o.threshold, ri, o.logger(w)), nil
}

// NewRootCommand builds the arbiterctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "arbiterctl",
		Short: "Rank alternatives with the Analytic Hierarchy Process",
		Long: `arbiterctl derives criteria weights from a pairwise comparison matrix,
rejects matrices whose consistency ratio exceeds the threshold, and ranks
alternatives by their weighted scores.

Matrices are CSV grids of decimals or fractions (1/3). An optional first row
and column of criterion names is accepted. Specs tables are CSV with a header
row followed by one row per alternative: its name, then one value per criterion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().Float64VarP(&opts.threshold, "threshold", "t", ahp.DefaultThreshold, "Maximum acceptable consistency ratio")
	root.PersistentFlags().Float64SliceVar(&opts.randomIndex, "random-index", nil, "Random index table, one value per dimension starting at n=1")

	root.AddCommand(
		newEvaluateCommand(opts),
		newWeightsCommand(opts),
		newRandomIndexCommand(opts),
	)
	return root
}

// Execute runs arbiterctl and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
