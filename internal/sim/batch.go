// internal/sim/batch.go
//
// Batch assessment: run one game per secret across a pool of worker
// goroutines. Games are independent computations over shared read-only word
// lists, so the only coordination is the worker limit and the progress bar.
// Cancellation is honored between games, never mid-game (a single game is
// bounded by its turn limit anyway).

package sim

import (
	"context"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dsalas/wordle-solver/internal/strategy"
	"github.com/dsalas/wordle-solver/internal/words"
)

// BatchOptions configures a batch run.
type BatchOptions struct {
	MaxTurns int
	Workers  int  // <=0 means one worker per CPU as decided by errgroup callers
	Progress bool // render a progress bar on stderr
}

// RunBatch plays one game per secret and returns the results in secret
// order. newStrategy is called once per game so stateful strategies (the
// random variant owns a rand source) are never shared across goroutines.
// A game that fails (Result.Err != nil) does not stop the batch; only
// context cancellation does.
func RunBatch(ctx context.Context, secrets []string, lists *words.Lists, newStrategy func(gameIdx int) strategy.Strategy, opts BatchOptions) ([]*Result, error) {
	results := make([]*Result, len(secrets))

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(secrets)))
	}

	grp, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		grp.SetLimit(opts.Workers)
	}

	for i, secret := range secrets {
		i, secret := i, secret
		grp.Go(func() error {
			// Honor cancellation between games only.
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := New(secret, lists, opts.MaxTurns)
			if err != nil {
				results[i] = &Result{ID: randomID(), Secret: secret, Status: StatusNotStarted, Err: err}
			} else {
				// Per-game failures are recorded, not propagated:
				// the batch reports why each game ended.
				results[i], _ = g.Play(newStrategy(i))
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
