package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dsalas/wordle-solver/internal/report"
	"github.com/dsalas/wordle-solver/internal/sim"
	"github.com/dsalas/wordle-solver/internal/store"
	"github.com/dsalas/wordle-solver/internal/strategy"
)

// assessCmd runs one game per answer (or a prefix sample) in parallel and
// prints aggregate statistics; optionally persists the run to SQLite.
func assessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a strategy across the answer pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := loadLists(cmd)
			if err != nil {
				return err
			}
			newStrategy, name, err := strategyFlag(cmd)
			if err != nil {
				return err
			}

			turns, _ := cmd.Flags().GetInt("turns")
			workers, _ := cmd.Flags().GetInt("workers")
			sample, _ := cmd.Flags().GetInt("sample")
			noProgress, _ := cmd.Flags().GetBool("no-progress")
			dbPath, _ := cmd.Flags().GetString("db")

			secrets := lists.Answers
			if sample > 0 && sample < len(secrets) {
				secrets = secrets[:sample]
			}
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			// Ctrl-C stops the batch between games; finished games keep
			// their results.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info().Str("strategy", name).Int("games", len(secrets)).
				Int("workers", workers).Int("maxTurns", turns).Msg("starting batch")
			startedAt := time.Now().UTC()

			results, runErr := sim.RunBatch(ctx, secrets, lists, newStrategy, sim.BatchOptions{
				MaxTurns: turns,
				Workers:  workers,
				Progress: !noProgress,
			})

			// Collect what completed even on cancellation.
			mem := store.NewMemoryStore()
			for _, r := range results {
				if r != nil {
					_ = mem.Save(ctx, r)
				}
			}
			done, _ := mem.List(context.Background())

			stats := report.Summarize(done, turns)
			stats.Print(cmd.OutOrStdout())

			if dbPath != "" {
				if err := persistRun(context.Background(), dbPath, name, turns, startedAt, done, stats); err != nil {
					return fmt.Errorf("persist run: %w", err)
				}
			}
			if runErr != nil {
				return fmt.Errorf("batch interrupted: %w", runErr)
			}
			return nil
		},
	}
	cmd.Flags().String("strategy", "frequency", fmt.Sprintf("strategy to run %v", strategy.Names()))
	cmd.Flags().Int64("seed", 1, "base seed for the random strategy")
	cmd.Flags().Int("turns", sim.DefaultMaxTurns, "maximum number of turns per game")
	cmd.Flags().Int("workers", 0, "concurrent games (default: number of CPUs)")
	cmd.Flags().Int("sample", 0, "assess only the first N answers (0 = all)")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().String("db", "", "SQLite path to persist the run (e.g. ./data/runs.db)")
	return cmd
}
