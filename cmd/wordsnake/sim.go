package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/engine"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/storage"
	"github.com/vovakirdan/wordsnake/internal/words"
)

var (
	flagSimTicks  int
	flagSimSteer  bool
	flagSimFormat string
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round",
	Long: `Run one round without a terminal UI and print a report.

Humans keep their heading unless --steer is set, in which case they
follow the same planner the AI snakes use. With a fixed --seed the
report is identical on every run.

Examples:
  wordsnake sim --seed 42
  wordsnake sim --ticks 5000 --steer --duo
  wordsnake sim --difficulty hard --format yaml
  wordsnake sim --steer --save`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagDuo, "duo", false, "Add the second human player")
	simCmd.Flags().BoolVar(&flagSimSteer, "steer", false, "Steer humans with the autopilot")
	simCmd.Flags().StringVar(&flagSimFormat, "format", "text", "Report format: text or yaml")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the finished round in the scores database")
}

// simOptions controls one headless round.
type simOptions struct {
	GameID string
	Ticks  int
	Seed   int64
	Steer  bool
}

// simReport summarizes a headless round.
type simReport struct {
	Game           string         `yaml:"game"`
	Seed           int64          `yaml:"seed"`
	Ticks          uint64         `yaml:"ticks"`
	Word           string         `yaml:"word"`
	WordsCompleted int            `yaml:"words_completed"`
	RoundOver      bool           `yaml:"round_over"`
	Reason         string         `yaml:"reason,omitempty"`
	Culprit        string         `yaml:"culprit,omitempty"`
	Actors         []simActor     `yaml:"actors"`
	Events         map[string]int `yaml:"events,omitempty"`
}

type simActor struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"`
	Score    int    `yaml:"score"`
	Length   int    `yaml:"length"`
	Progress int    `yaml:"progress"`
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimFormat != "text" && flagSimFormat != "yaml" {
		return fmt.Errorf("unknown --format %q", flagSimFormat)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	gameID := wordsnake.IDSolo
	if flagDuo {
		gameID = wordsnake.IDDuo
	}
	cfg, err := loadGameConfig(flagDuo)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report, final, err := simulate(cfg, simOptions{
		GameID: gameID,
		Ticks:  flagSimTicks,
		Seed:   seed,
		Steer:  flagSimSteer,
	}, logger)
	if err != nil {
		return err
	}

	if flagSimSave && final.RoundOver {
		store := openStore(logger)
		if store != nil {
			defer store.Close()
			id, err := store.SaveRound(storage.NewRound(gameID, final))
			if err != nil {
				return fmt.Errorf("saving round: %w", err)
			}
			logger.Info("round saved", "round", id)
		}
	}

	return writeReport(os.Stdout, report, flagSimFormat)
}

// loadGameConfig applies the global config and difficulty flags.
func loadGameConfig(duo bool) (config.WordSnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.WordSnakeConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.WordSnakeConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if duo {
		cfg.Players.SecondPlayer = true
	}
	return cfg, nil
}

// simulate plays one round from opts.Seed until it ends or opts.Ticks pass.
// It returns the report and the last snapshot.
func simulate(cfg config.WordSnakeConfig, opts simOptions, logger *log.Logger) (simReport, engine.Snapshot, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ecfg, err := cfg.EngineConfig(words.DefaultDictionary())
	if err != nil {
		return simReport{}, engine.Snapshot{}, err
	}

	events := make(map[string]int)
	world, err := engine.New(ecfg,
		engine.WithLogger(logger),
		engine.WithObserver(engine.ObserverFunc(func(s engine.Snapshot) {
			for _, e := range s.Events {
				events[string(e.Kind)]++
			}
		})),
	)
	if err != nil {
		return simReport{}, engine.Snapshot{}, err
	}
	if err := world.Reset(opts.Seed); err != nil {
		return simReport{}, engine.Snapshot{}, err
	}

	snap := world.Snapshot()
	for !snap.RoundOver && snap.Tick < uint64(opts.Ticks) {
		var in engine.Input
		if opts.Steer {
			in = world.AutopilotInput()
		}
		snap, err = world.Advance(in)
		if err != nil {
			logger.Warn("round aborted", "tick", snap.Tick, "err", err)
			break
		}
	}

	return buildReport(opts.GameID, snap, events), snap, nil
}

func buildReport(gameID string, s engine.Snapshot, events map[string]int) simReport {
	r := simReport{
		Game:           gameID,
		Seed:           s.Seed,
		Ticks:          s.Tick,
		Word:           s.Word,
		WordsCompleted: s.WordsCompleted,
		RoundOver:      s.RoundOver,
		Reason:         string(s.Reason),
		Events:         events,
	}
	if s.RoundOver && s.Culprit != 0 {
		r.Culprit = s.Culprit.String()
	}
	for _, a := range s.Actors {
		r.Actors = append(r.Actors, simActor{
			ID:       a.ID.String(),
			Kind:     a.Kind.String(),
			Score:    a.Score,
			Length:   len(a.Body),
			Progress: a.Progress,
		})
	}
	return r
}

func writeReport(w io.Writer, r simReport, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s  seed %d  %d ticks\n", r.Game, r.Seed, r.Ticks)
	fmt.Fprintf(w, "word %q  completed %d\n", r.Word, r.WordsCompleted)
	if r.RoundOver {
		end := r.Reason
		if r.Culprit != "" {
			end = r.Culprit + " " + r.Reason
		}
		fmt.Fprintf(w, "round over: %s\n", end)
	} else {
		fmt.Fprintln(w, "round still running")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %-5s  %-5s  %-6s  %s\n", "Actor", "Kind", "Score", "Length", "Progress")
	for _, a := range r.Actors {
		fmt.Fprintf(w, "  %-8s  %-5s  %-5d  %-6d  %d\n", a.ID, a.Kind, a.Score, a.Length, a.Progress)
	}
	return nil
}
