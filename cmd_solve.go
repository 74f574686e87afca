package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dsalas/wordle-solver/internal/daily"
	"github.com/dsalas/wordle-solver/internal/report"
	"github.com/dsalas/wordle-solver/internal/sim"
	"github.com/dsalas/wordle-solver/internal/strategy"
	"github.com/dsalas/wordle-solver/internal/words"
)

// solveCmd runs one strategy against a single secret and prints the turn
// trace with colored tiles.
func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one strategy against a single secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := loadLists(cmd)
			if err != nil {
				return err
			}
			newStrategy, name, err := strategyFlag(cmd)
			if err != nil {
				return err
			}
			secret, err := pickSecret(cmd, lists)
			if err != nil {
				return err
			}
			turns, _ := cmd.Flags().GetInt("turns")

			g, err := sim.New(secret, lists, turns)
			if err != nil {
				return err
			}
			log.Info().Str("strategy", name).Str("gameId", g.ID).Int("maxTurns", g.MaxTurns).Msg("starting game")

			res, err := g.Play(newStrategy(0))
			out := cmd.OutOrStdout()
			report.RenderHistory(out, res.History)
			report.RenderKeyboard(out, res.History)
			if err != nil {
				return fmt.Errorf("game %s failed: %w", res.ID, err)
			}
			if res.Status == sim.StatusWon {
				fmt.Fprintf(out, "solved %q in %d/%d\n", res.Secret, res.Turns, g.MaxTurns)
			} else {
				fmt.Fprintf(out, "out of turns, the word was %q (X/%d)\n", res.Secret, g.MaxTurns)
			}
			return nil
		},
	}
	cmd.Flags().String("strategy", "frequency", fmt.Sprintf("strategy to run %v", strategy.Names()))
	cmd.Flags().Int64("seed", time.Now().UnixNano(), "seed for the random strategy")
	cmd.Flags().String("secret", "", "secret word (default: random answer)")
	cmd.Flags().Bool("daily", false, "use the deterministic daily secret")
	cmd.Flags().String("salt", "", "salt for daily secret selection (default: DAILY_SALT)")
	cmd.Flags().Int("turns", sim.DefaultMaxTurns, "maximum number of turns")
	return cmd
}

// pickSecret resolves --secret / --daily, falling back to a random answer.
func pickSecret(cmd *cobra.Command, lists *words.Lists) (string, error) {
	if secret, _ := cmd.Flags().GetString("secret"); secret != "" {
		return secret, nil
	}
	if useDaily, _ := cmd.Flags().GetBool("daily"); useDaily {
		salt, _ := cmd.Flags().GetString("salt")
		if salt == "" {
			salt = getEnv("DAILY_SALT", "wordle-solver")
		}
		idx := daily.WordIndex(time.Now(), salt, len(lists.Answers))
		return lists.Answers[idx], nil
	}
	return lists.RandomAnswer(), nil
}
