package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/platform/tui"
	"github.com/vovakirdan/wordsnake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start word snake with a mode picker menu",
	Long: `Start word snake in interactive menu mode.

After a round ends, press B to return to the menu and play again.

Controls:
  Up/Down     - Choose mode
  Left/Right  - Choose difficulty
  Enter       - Play
  Tab         - High scores
  Q           - Quit

Examples:
  wordsnake menu
  wordsnake menu --fps 10
  wordsnake menu --db ./scores.db`,
	RunE: runMenu,
}

var playCmd = &cobra.Command{
	Use:   "play [solo|duo]",
	Short: "Play a mode directly",
	Long: `Start a round of the given mode (solo by default).

Controls:
  Arrows     - Steer player 1
  WASD       - Steer player 2 (duo), or player 1 (solo)
  P/Space    - Pause
  R          - Restart (after the round ends)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - One AI rival, long freezes, obstacles grow slowly
  normal - Config rules, obstacles grow with the leading score
  hard   - At least two AI rivals, more obstacles, frequent eagle
  fixed  - Config rules, obstacle count never grows

Examples:
  wordsnake play
  wordsnake play duo
  wordsnake play --difficulty hard --seed 42
  wordsnake play --config ./my-wordsnake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDuo, "duo", false, "Play the two-player mode (same as 'play duo')")
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameIDForMode maps a CLI mode name, or a registered ID, to a game ID.
func gameIDForMode(mode string) (string, error) {
	switch wordsnake.Mode(mode) {
	case "", wordsnake.ModeSolo:
		return wordsnake.IDSolo, nil
	case wordsnake.ModeDuo:
		return wordsnake.IDDuo, nil
	}
	if registry.Exists(mode) {
		return mode, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'wordsnake list')", mode)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, terminalConfig(), gameOptions(logger))
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	} else if flagDuo {
		mode = string(wordsnake.ModeDuo)
	}
	gameID, err := gameIDForMode(mode)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, gameOptions(logger))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
