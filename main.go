package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dsalas/wordle-solver/internal/strategy"
	"github.com/dsalas/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// rootCmd wires the subcommands and the shared dictionary flags.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Simulate hard-mode Wordle and assess solving strategies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("answers", "", "path to the answer pool (default: WORDS_ANSWERS_FILE or embedded)")
	root.PersistentFlags().String("allowed", "", "path to the allowed guess pool (default: WORDS_ALLOWED_FILE or embedded)")
	root.PersistentFlags().Int("length", words.DefaultLength, "word length")

	root.AddCommand(solveCmd(), assessCmd(), playCmd())
	return root
}

// loadLists reads the persistent dictionary flags and loads the word pools.
func loadLists(cmd *cobra.Command) (*words.Lists, error) {
	answersPath, _ := cmd.Flags().GetString("answers")
	allowedPath, _ := cmd.Flags().GetString("allowed")
	length, _ := cmd.Flags().GetInt("length")

	lists, err := words.Load(answersPath, allowedPath, length)
	if err != nil {
		return nil, err
	}
	a, g := lists.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Int("length", lists.Length).Msg("word lists loaded")
	return lists, nil
}

// strategyFlag resolves the --strategy and --seed flags into a factory so
// batch runs can hand every game its own instance.
func strategyFlag(cmd *cobra.Command) (func(gameIdx int) strategy.Strategy, string, error) {
	name, _ := cmd.Flags().GetString("strategy")
	seed, _ := cmd.Flags().GetInt64("seed")

	// Validate the name once up front.
	if _, err := strategy.ForName(name, seed); err != nil {
		return nil, "", err
	}
	factory := func(gameIdx int) strategy.Strategy {
		s, _ := strategy.ForName(name, seed+int64(gameIdx))
		return s
	}
	return factory, name, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
