package wordsnake

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/registry"
)

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	cfg := config.DefaultWordSnakeConfig()
	config.ApplyPreset(&cfg, config.DifficultyNormal)
	if mode == ModeDuo {
		cfg.Players.SecondPlayer = true
	}
	g := NewWithConfig(mode, cfg, nil)
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, ModeSolo)
	g2 := newTestGame(t, ModeSolo)

	for i := range 100 {
		in := core.NewMultiInputFrame()
		switch i {
		case 10:
			in.Set(core.Player1, core.ActionDown)
		case 20:
			in.Set(core.Player1, core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("games with the same seed and input diverged")
	}
}

func TestResetFitsBoard(t *testing.T) {
	g := newTestGame(t, ModeSolo)

	b := g.world.Config().Bounds
	if b.Cols() != 39 || b.Rows() != 19 {
		t.Errorf("board = %dx%d cells, expected 39x19", b.Cols(), b.Rows())
	}
	if g.tooSmall() {
		t.Error("fitted board should not be too small")
	}
	if len(g.Snapshot().Actors) != 2 {
		t.Errorf("solo should have P1 and one AI, got %d actors", len(g.Snapshot().Actors))
	}
}

func TestStepAdvancesOneTick(t *testing.T) {
	g := newTestGame(t, ModeSolo)

	res := g.Step(core.NewMultiInputFrame())
	if res.Err != nil {
		t.Fatalf("Step() error = %v", res.Err)
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", g.Snapshot().Tick)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeSolo)

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	g.Step(core.NewMultiInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Errorf("paused game advanced to tick %d", g.Snapshot().Tick)
	}

	res = g.Step(in)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1 after resume", g.Snapshot().Tick)
	}
}

func TestDirectionInput(t *testing.T) {
	g := newTestGame(t, ModeDuo)

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionUp)
	in.Set(core.Player2, core.ActionDown)
	g.Step(in)

	snap := g.Snapshot()
	if snap.RoundOver {
		t.Skipf("round ended on the first tick: %s", snap.Reason)
	}
	p1, _ := snap.Actor(actor.Player1)
	p2, _ := snap.Actor(actor.Player2)
	if p1.Dir != grid.DirUp {
		t.Errorf("P1 heading = %s, expected up", p1.Dir)
	}
	if p2.Dir != grid.DirDown {
		t.Errorf("P2 heading = %s, expected down", p2.Dir)
	}
}

func TestSoloIgnoresSecondSeat(t *testing.T) {
	g := newTestGame(t, ModeSolo)

	in := core.NewMultiInputFrame()
	in.Set(core.Player2, core.ActionUp)
	g.Step(in)

	if _, ok := g.pending[actor.Player2]; ok {
		t.Error("solo mode should not buffer player 2 input")
	}
	if _, ok := g.Snapshot().Actor(actor.Player2); ok {
		t.Error("solo mode should not spawn player 2")
	}
}

func TestRestartAfterRoundOver(t *testing.T) {
	g := newTestGame(t, ModeSolo)

	// Heading right with no input reaches the wall within one board width.
	for range 200 {
		if g.Step(core.NewMultiInputFrame()).State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("round should be over")
	}

	over := g.Snapshot().Tick
	g.Step(core.NewMultiInputFrame())
	if g.Snapshot().Tick != over {
		t.Error("finished round should not advance")
	}

	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionRestart)
	res := g.Step(in)
	if res.Err != nil {
		t.Fatalf("restart error = %v", res.Err)
	}
	if res.State.GameOver || g.Snapshot().Tick != 0 {
		t.Errorf("restart should start a fresh round, got tick %d over=%v", g.Snapshot().Tick, res.State.GameOver)
	}
}

func TestTooSmallScreen(t *testing.T) {
	cfg := config.DefaultWordSnakeConfig()
	g := NewWithConfig(ModeSolo, cfg, nil)
	if err := g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !g.tooSmall() {
		t.Fatal("20x10 screen should be too small")
	}

	g.Step(core.NewMultiInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("game should not advance while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("render should ask for a bigger window:\n%s", screen.String())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeSolo)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), " WORD "+strings.ToUpper(g.Snapshot().Word)) {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "player1 0") || !strings.Contains(screen.Row(1), "ai1 0") {
		t.Errorf("score row = %q", screen.Row(1))
	}
	if screen.Get(0, hudRows) != '┌' || screen.Get(79, 23) != '┘' {
		t.Errorf("board border misplaced:\n%s", screen.String())
	}

	pickups := 0
	for _, p := range g.Snapshot().Pickups {
		col, row := g.world.Config().Bounds.Index(p.Cell)
		if screen.Get(1+col*cellWidth, hudRows+1+row) == p.Char {
			pickups++
		}
	}
	if pickups == 0 {
		t.Error("no pickup letters were drawn")
	}
}

func TestProgressMask(t *testing.T) {
	tests := []struct {
		word     string
		progress int
		want     string
	}{
		{"CAT", 0, "___"},
		{"CAT", 2, "CA_"},
		{"CAT", 3, "CAT"},
	}
	for _, tc := range tests {
		if got := progressMask(tc.word, tc.progress); got != tc.want {
			t.Errorf("progressMask(%q, %d) = %q, expected %q", tc.word, tc.progress, got, tc.want)
		}
	}
}

func TestRegistryFactories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordsnake.yaml")
	if err := os.WriteFile(path, []byte("players:\n  ai_count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{IDSolo, IDDuo} {
		g, err := registry.Create(id, registry.Options{ConfigPath: path, Difficulty: "easy"})
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		ws := g.(*Game)
		// easy caps the AI count at one
		want := 2
		if id == IDDuo {
			want = 3
		}
		if n := len(ws.Snapshot().Actors); n != want {
			t.Errorf("%s has %d actors, expected %d", id, n, want)
		}
	}

	if _, err := registry.Create(IDSolo, registry.Options{Difficulty: "insane"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
