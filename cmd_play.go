package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsalas/wordle-solver/internal/constraint"
	"github.com/dsalas/wordle-solver/internal/game"
	"github.com/dsalas/wordle-solver/internal/report"
	"github.com/dsalas/wordle-solver/internal/sim"
)

// playCmd is the interactive mode: a human guesses against a secret, with
// colored tiles and a keyboard status block after every turn.
func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game yourself against a random, given, or daily secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := loadLists(cmd)
			if err != nil {
				return err
			}
			secret, err := pickSecret(cmd, lists)
			if err != nil {
				return err
			}
			secret = strings.ToLower(strings.TrimSpace(secret))
			if !lists.IsAnswer(secret) && !lists.IsAllowed(secret) {
				return fmt.Errorf("secret %q is not in the word lists", secret)
			}
			maxTurns, _ := cmd.Flags().GetInt("turns")
			if maxTurns <= 0 {
				maxTurns = sim.DefaultMaxTurns
			}
			hard, _ := cmd.Flags().GetBool("hard")

			tracker := constraint.New(lists.Length)
			var history []game.Turn

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for turn := 1; turn <= maxTurns; {
				fmt.Fprintf(out, "guess %d/%d: ", turn, maxTurns)
				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}
				guess := strings.ToLower(strings.TrimSpace(in.Text()))
				switch {
				case len(guess) != lists.Length:
					fmt.Fprintf(out, "need a %d-letter word, got %d letters\n", lists.Length, len(guess))
					continue
				case !lists.IsAllowed(guess):
					fmt.Fprintf(out, "%q is not a word\n", guess)
					continue
				}
				if hard {
					if err := tracker.CheckGuess(guess); err != nil {
						fmt.Fprintln(out, err)
						continue
					}
				}

				fb, err := game.Evaluate(secret, guess)
				if err != nil {
					return err
				}
				if err := tracker.Absorb(guess, fb); err != nil {
					return err
				}
				history = append(history, game.Turn{Guess: guess, Feedback: fb})

				fmt.Fprintln(out)
				report.RenderHistory(out, history)
				fmt.Fprintln(out)
				report.RenderKeyboard(out, history)
				fmt.Fprintln(out)

				if fb.AllCorrect() {
					fmt.Fprintf(out, "you won! %d/%d\n", turn, maxTurns)
					printShareGrid(out, history)
					return nil
				}
				turn++
			}

			fmt.Fprintf(out, "out of turns, the word was %q (X/%d)\n", secret, maxTurns)
			printShareGrid(out, history)
			return nil
		},
	}
	cmd.Flags().String("secret", "", "secret word (default: random answer)")
	cmd.Flags().Bool("daily", false, "use the deterministic daily secret")
	cmd.Flags().String("salt", "", "salt for daily secret selection (default: DAILY_SALT)")
	cmd.Flags().Int("turns", sim.DefaultMaxTurns, "maximum number of turns")
	cmd.Flags().Bool("hard", false, "enforce hard-mode legality on your guesses")
	return cmd
}

// printShareGrid prints the emoji result grid, one row per guess.
func printShareGrid(out io.Writer, history []game.Turn) {
	for _, t := range history {
		var b strings.Builder
		for _, m := range t.Feedback {
			switch m {
			case game.MarkCorrect:
				b.WriteString("\U0001F7E9")
			case game.MarkPresent:
				b.WriteString("\U0001F7E8")
			default:
				b.WriteString("⬛")
			}
		}
		fmt.Fprintln(out, b.String())
	}
}
