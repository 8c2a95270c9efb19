package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densefill/config"
	"github.com/katalvlaran/densefill/scatter"
)

// newBenchCmd represents the bench command.
func newBenchCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "bench",
		Short: "Time Fill on synthetic unique coordinates",
		Long: `Generate seeded random entries with unique coordinates and time Fill for
each thread hint. Flags override the bench section of the configuration.

Example:
  densefill bench --entries 1000000 --rows 2048 --cols 2048 --threads 1,2,4,8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := a.cfg.Bench
			flags := cmd.Flags()
			if flags.Changed("entries") {
				b.Entries, _ = flags.GetInt("entries")
			}
			if flags.Changed("rows") {
				b.Rows, _ = flags.GetInt("rows")
			}
			if flags.Changed("cols") {
				b.Cols, _ = flags.GetInt("cols")
			}
			if flags.Changed("rounds") {
				b.Rounds, _ = flags.GetInt("rounds")
			}
			if flags.Changed("seed") {
				b.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("threads") {
				b.Hints, _ = flags.GetIntSlice("threads")
			}
			// Re-validate the merged settings through the config rules.
			merged := *a.cfg
			merged.Bench = b
			if err := merged.Validate(); err != nil {
				return err
			}

			return a.runBench(cmd.OutOrStdout(), b)
		},
	}
	c.Flags().Int("entries", 0, "number of entries")
	c.Flags().Int("rows", 0, "output rows")
	c.Flags().Int("cols", 0, "output columns")
	c.Flags().Int("rounds", 0, "timed rounds per thread hint")
	c.Flags().Int64("seed", 0, "random seed")
	c.Flags().IntSliceP("threads", "t", nil, "thread hints to compare")

	return c
}

// benchResult is one line of the report.
type benchResult struct {
	hint, workers int
	best, mean    time.Duration
}

// runBench generates the input once and times every hint on the same buffer.
func (a *app) runBench(out io.Writer, b config.Bench) error {
	rows, cols, values := syntheticEntries(b)
	buf := make([]float64, b.Rows*b.Cols)
	opts := a.cfg.Options()

	hints := b.Hints
	if len(hints) == 0 {
		hints = []int{a.cfg.Threads}
	}
	results := make([]benchResult, 0, len(hints))
	for _, hint := range hints {
		plan, err := scatter.NewPlan(b.Entries, hint, opts...)
		if err != nil {
			return err
		}
		a.logger.Debug("bench plan", "plan", plan.String())

		res := benchResult{hint: hint, workers: plan.Workers}
		var total time.Duration
		for r := 0; r < b.Rounds; r++ {
			start := time.Now()
			if err = scatter.Fill(rows, cols, values, b.Entries, buf, b.Rows, b.Cols, hint, opts...); err != nil {
				a.logger.Error("bench fill failed", "hint", hint, "err", err)
				return err
			}
			d := time.Since(start)
			total += d
			if r == 0 || d < res.best {
				res.best = d
			}
		}
		res.mean = total / time.Duration(b.Rounds)
		a.logger.Info("bench", "hint", hint, "workers", res.workers, "best", res.best, "mean", res.mean)
		results = append(results, res)
	}

	fmt.Fprintf(out, "entries=%d shape=%dx%d rounds=%d\n", b.Entries, b.Rows, b.Cols, b.Rounds)
	fmt.Fprintf(out, "%-6s %-8s %-14s %-14s\n", "hint", "workers", "best", "mean")
	for _, r := range results {
		fmt.Fprintf(out, "%-6d %-8d %-14s %-14s\n", r.hint, r.workers, r.best, r.mean)
	}

	return nil
}

// syntheticEntries draws b.Entries distinct cells so the timing does not
// depend on duplicate races.
func syntheticEntries(b config.Bench) (rows, cols []int32, values []float64) {
	rng := rand.New(rand.NewSource(b.Seed))
	cells := rng.Perm(b.Rows * b.Cols)[:b.Entries]

	rows = make([]int32, b.Entries)
	cols = make([]int32, b.Entries)
	values = make([]float64, b.Entries)
	for i, cell := range cells {
		rows[i] = int32(cell % b.Rows)
		cols[i] = int32(cell / b.Rows)
		values[i] = rng.NormFloat64()
	}

	return rows, cols, values
}
