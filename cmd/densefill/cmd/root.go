package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densefill/config"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "densefill",
		Short: "Fill dense matrices from COO triplets",
		Long: `densefill scatters coordinate-list (row, col, value) entries into a dense
column-major matrix using several goroutines.

Examples:
  densefill fill --in triplets.txt --rows 3 --cols 2 --threads 2
  densefill bench --entries 1000000 --rows 2048 --cols 2048 --threads 1,2,4,8`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newFillCmd(a), newBenchCmd(a))

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "path", path, "threads", cfg.Threads, "max_workers", cfg.MaxWorkers)

	return nil
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
