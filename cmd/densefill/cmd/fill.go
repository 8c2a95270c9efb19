package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densefill/cooio"
	"github.com/katalvlaran/densefill/scatter"
)

// newFillCmd represents the fill command.
func newFillCmd(a *app) *cobra.Command {
	var (
		in         string
		rows, cols int
		threads    int
	)
	c := &cobra.Command{
		Use:   "fill",
		Short: "Scatter a triplet file into a dense matrix and print it",
		Long: `Read "row col value" triplets (0-based, one per line) and print the dense
matrix one row per line. Rows and columns default to the smallest shape that
holds every entry.

Example:
  densefill fill --in triplets.txt --rows 3 --cols 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if threads == 0 {
				threads = a.cfg.Threads
			}

			return a.runFill(cmd.InOrStdin(), cmd.OutOrStdout(), in, rows, cols, threads)
		},
	}
	c.Flags().StringVarP(&in, "in", "i", "-", `triplet file ("-" reads stdin)`)
	c.Flags().IntVar(&rows, "rows", 0, "output rows (0 infers from data)")
	c.Flags().IntVar(&cols, "cols", 0, "output columns (0 infers from data)")
	c.Flags().IntVarP(&threads, "threads", "t", 0, "thread hint (0 uses config)")

	return c
}

// runFill reads triplets, fills a fresh matrix and writes it to out.
func (a *app) runFill(stdin io.Reader, out io.Writer, in string, rows, cols, threads int) error {
	src := stdin
	if in != "-" {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("open triplets: %w", err)
		}
		defer f.Close()
		src = f
	}

	entries, err := cooio.ReadTriplets(src)
	if err != nil {
		return err
	}
	dataRows, dataCols := entries.Dims()
	if rows == 0 {
		rows = dataRows
	}
	if cols == 0 {
		cols = dataCols
	}

	opts := a.cfg.Options()
	plan, err := scatter.NewPlan(entries.Len(), threads, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("plan", "rows", rows, "cols", cols, "plan", plan.String())

	start := time.Now()
	m, err := scatter.ToDense(entries, rows, cols, threads, opts...)
	if err != nil {
		a.logger.Error("fill failed", "err", err)
		return err
	}
	a.logger.Info("filled", "entries", entries.Len(), "workers", plan.Workers, "elapsed", time.Since(start))

	return cooio.WriteDense(out, m)
}
