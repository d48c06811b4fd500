// Package wordsnake adapts the word snake engine to the platform Game
// contract: it maps key frames to headings, owns pause and restart, and
// draws snapshots into the screen buffer.
package wordsnake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/engine"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/words"
)

// Mode selects how many humans share the keyboard.
type Mode string

const (
	ModeSolo Mode = "solo"
	ModeDuo  Mode = "duo"
)

// Game IDs as registered with the registry and stored with scores.
const (
	IDSolo = "wordsnake"
	IDDuo  = "wordsnake_duo"
)

// Screen rows above the board: word line, score line, separator.
const hudRows = 3

// Each board cell is drawn two characters wide so cells look square.
const cellWidth = 2

// Game runs one word snake session for the terminal front end.
type Game struct {
	mode Mode
	base config.WordSnakeConfig
	log  *log.Logger

	world   *engine.World
	snap    engine.Snapshot
	rng     *rand.Rand // restart seeds
	pending engine.Input

	screenW int
	screenH int
	paused  bool
	err     error
}

// New builds a game from the config file and difficulty preset in opts.
func New(mode Mode, opts registry.Options) (*Game, error) {
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	if mode == ModeDuo {
		cfg.Players.SecondPlayer = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewWithConfig(mode, cfg, opts.Logger), nil
}

// NewWithConfig builds a game from an already loaded config.
func NewWithConfig(mode Mode, cfg config.WordSnakeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		mode: mode,
		base: cfg,
		log:  logger.WithPrefix("wordsnake"),
	}
}

func init() {
	registry.Register(IDSolo, "Word Snake", func(opts registry.Options) (registry.Game, error) {
		return New(ModeSolo, opts)
	})
	registry.Register(IDDuo, "Word Snake (2 players)", func(opts registry.Options) (registry.Game, error) {
		return New(ModeDuo, opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDuo {
		return IDDuo
	}
	return IDSolo
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDuo {
		return "Word Snake (2 players)"
	}
	return "Word Snake"
}

// Mode returns the session mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Players returns how many humans share the keyboard.
func (g *Game) Players() int {
	return len(g.seats())
}

// Reset fits the board to the screen and starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.pending = make(engine.Input)
	g.err = nil

	wcfg := g.base
	wcfg.FitBoard(cfg.ScreenW, cfg.ScreenH, cellWidth, hudRows)

	ecfg, err := wcfg.EngineConfig(words.DefaultDictionary())
	if err != nil {
		g.err = err
		return err
	}
	g.world, err = engine.New(ecfg, engine.WithLogger(g.log))
	if err != nil {
		g.err = err
		return err
	}
	if err := g.world.Reset(cfg.Seed); err != nil {
		g.err = err
		g.snap = g.world.Snapshot()
		return err
	}
	g.snap = g.world.Snapshot()
	g.log.Debug("round ready", "board", fmt.Sprintf("%dx%d", ecfg.Bounds.Cols(), ecfg.Bounds.Rows()), "seed", cfg.Seed)
	return nil
}

// Step advances the round by one engine tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionRestart) && g.snap.RoundOver {
		err := g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State(), Err: err}
	}

	if in.Has(core.ActionPause) && !g.snap.RoundOver {
		g.paused = !g.paused
	}

	g.bufferInput(in)

	if g.snap.RoundOver || g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	snap, err := g.world.Advance(g.pending)
	g.snap = snap
	clear(g.pending)
	if err != nil {
		g.err = err
		g.log.Error("round aborted", "err", err)
	}
	return core.StepResult{State: g.State(), Err: err}
}

// seat binds a keyboard player to the snake it steers.
type seat struct {
	player core.PlayerID
	id     actor.ID
}

func (g *Game) seats() []seat {
	if g.mode == ModeDuo {
		return []seat{{core.Player1, actor.Player1}, {core.Player2, actor.Player2}}
	}
	return []seat{{core.Player1, actor.Player1}}
}

// bufferInput keeps the latest heading per human until the next advance.
func (g *Game) bufferInput(in core.MultiInputFrame) {
	for _, s := range g.seats() {
		if d, ok := direction(in.Player(s.player)); ok {
			g.pending[s.id] = d
		}
	}
}

// direction maps a frame's arrow actions to a heading.
func direction(f core.InputFrame) (grid.Direction, bool) {
	switch {
	case f.Has(core.ActionUp):
		return grid.DirUp, true
	case f.Has(core.ActionDown):
		return grid.DirDown, true
	case f.Has(core.ActionLeft):
		return grid.DirLeft, true
	case f.Has(core.ActionRight):
		return grid.DirRight, true
	}
	return 0, false
}

// State returns the platform view of the round.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.LeadingHumanScore(),
		GameOver: g.snap.RoundOver || g.err != nil,
		Paused:   g.paused,
	}
}

// Snapshot returns the latest engine snapshot.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}

// Err returns the error that aborted the current round, if any.
func (g *Game) Err() error {
	return g.err
}

// boardSize returns the board size in screen characters, border excluded.
func (g *Game) boardSize() (w, h int) {
	if g.world == nil {
		return 0, 0
	}
	b := g.world.Config().Bounds
	return b.Cols() * cellWidth, b.Rows()
}

func (g *Game) tooSmall() bool {
	w, h := g.boardSize()
	return g.screenW < w+2 || g.screenH < h+2+hudRows
}
