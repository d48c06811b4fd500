// wordsnake is a terminal word-collecting snake game with A* driven rivals.
//
// Usage:
//
//	wordsnake menu             - Start menu to pick a mode interactively
//	wordsnake play [mode]      - Play solo or duo directly
//	wordsnake sim              - Run a headless round and print a report
//	wordsnake serve            - Start SSH server for remote play
//	wordsnake scores [game]    - Show the best rounds
//	wordsnake words            - Inspect the word list and dictionary
//	wordsnake list             - List available modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 7)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.wordsnake/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"

	// Import the game to register its modes
	_ "github.com/vovakirdan/wordsnake/internal/games/wordsnake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagDuo        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsnake",
	Short: "Word Snake - spell words against AI snakes in your terminal",
	Long: `Word Snake is a terminal snake game about words. Steer your snake
over the letters of the target word in order while AI snakes race you
for them with A* pathfinding.

Available commands:
  menu     - Interactive mode picker with scores
  play     - Play a mode directly
  sim      - Run a headless round (useful for tuning configs)
  serve    - Start SSH server for remote play
  scores   - View the best rounds
  words    - Inspect the word list and dictionary
  list     - Show all modes

Examples:
  wordsnake menu
  wordsnake play duo --difficulty hard
  wordsnake sim --ticks 2000 --steer --format yaml
  wordsnake serve --ssh :2222
  wordsnake scores wordsnake_duo`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (moves per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default ~/.wordsnake/wordsnake.log for menu and play)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
}

// newLogger builds the logger from the log flags. Interactive commands log
// to ~/.wordsnake/wordsnake.log unless --log-file is set, since the TUI owns
// the terminal; the others log to stderr. The returned func closes the file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" && interactive {
		if dir := config.UserDir(); dir != "" {
			path = filepath.Join(dir, "wordsnake.log")
		}
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// gameOptions bundles the global game flags for registry.Create.
func gameOptions(logger *log.Logger) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}
}

// openStore opens the scores database. Play goes on without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
