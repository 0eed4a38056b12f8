// arcade plays grid puzzle games in the terminal: Minesweeper and the
// Gemgem gem swapper.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30, env ARCADE_FPS)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.arcade/scores.db, env ARCADE_DB)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/grid-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/grid-arcade/internal/games/gemgem"
	_ "github.com/vovakirdan/grid-arcade/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// envFlags maps flags to the environment variables that can set them.
var envFlags = map[string]string{
	"fps": "ARCADE_FPS",
	"db":  "ARCADE_DB",
	"ssh": "ARCADE_SSH_ADDR",
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Grid Arcade - Minesweeper and Gemgem in your terminal",
	Long: `Grid Arcade is a terminal games collection built around two grid
puzzles: Minesweeper and Gemgem, a timed match-3 gem swapper.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Settings can also come from ARCADE_FPS, ARCADE_DB and ARCADE_SSH_ADDR,
read from the environment or a .env file in the working directory.

Examples:
  arcade list
  arcade play minesweeper_expert
  arcade play gemgem --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores minesweeper_beginner`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// A missing .env is normal.
		_ = godotenv.Load()
		return applyEnv(cmd.Flags())
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyEnv fills flags left at their defaults from the environment.
func applyEnv(flags *pflag.FlagSet) error {
	for name, env := range envFlags {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}
