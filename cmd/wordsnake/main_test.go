package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/words"
)

func TestGameIDForMode(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{"", wordsnake.IDSolo, false},
		{"solo", wordsnake.IDSolo, false},
		{"duo", wordsnake.IDDuo, false},
		{wordsnake.IDDuo, wordsnake.IDDuo, false},
		{"tetris", "", true},
	}
	for _, tc := range tests {
		got, err := gameIDForMode(tc.mode)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("gameIDForMode(%q) = %q, %v", tc.mode, got, err)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultWordSnakeConfig()
	opts := simOptions{GameID: wordsnake.IDSolo, Ticks: 300, Seed: 42, Steer: true}

	first, snap, err := simulate(cfg, opts, nil)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	second, _, err := simulate(cfg, opts, nil)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed gave different reports:\n%+v\n%+v", first, second)
	}

	if first.Seed != 42 || first.Ticks != snap.Tick {
		t.Errorf("report header = seed %d, ticks %d", first.Seed, first.Ticks)
	}
	if first.Ticks > 300 {
		t.Errorf("ran %d ticks, limit was 300", first.Ticks)
	}
	if len(first.Actors) != 1+cfg.Players.AICount {
		t.Errorf("expected %d actors, got %d", 1+cfg.Players.AICount, len(first.Actors))
	}
	if first.Actors[0].ID != "player1" || first.Actors[0].Kind != "human" {
		t.Errorf("first actor = %+v", first.Actors[0])
	}
	if !first.RoundOver && first.Ticks != 300 {
		t.Errorf("round stopped early without ending at tick %d", first.Ticks)
	}
}

func TestSimulateDuo(t *testing.T) {
	cfg := config.DefaultWordSnakeConfig()
	cfg.Players.SecondPlayer = true

	report, _, err := simulate(cfg, simOptions{GameID: wordsnake.IDDuo, Ticks: 50, Seed: 7}, nil)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if report.Actors[1].ID != "player2" || report.Actors[1].Kind != "human" {
		t.Errorf("second actor = %+v", report.Actors[1])
	}
}

func TestSimulateInvalidConfig(t *testing.T) {
	cfg := config.DefaultWordSnakeConfig()
	cfg.Board.CellSize = 0

	if _, _, err := simulate(cfg, simOptions{Ticks: 10, Seed: 1}, nil); err == nil {
		t.Error("expected an error for a zero cell size")
	}
}

func TestWriteReport(t *testing.T) {
	r := simReport{
		Game:      wordsnake.IDSolo,
		Seed:      3,
		Ticks:     12,
		Word:      "fox",
		RoundOver: true,
		Reason:    "wall",
		Culprit:   "player1",
		Actors:    []simActor{{ID: "player1", Kind: "human", Score: 2, Length: 3}},
		Events:    map[string]int{"pickup": 2},
	}

	var text bytes.Buffer
	if err := writeReport(&text, r, "text"); err != nil {
		t.Fatalf("writeReport(text) failed: %v", err)
	}
	if !strings.Contains(text.String(), "round over: player1 wall") {
		t.Errorf("text report missing end line:\n%s", text.String())
	}

	var out bytes.Buffer
	if err := writeReport(&out, r, "yaml"); err != nil {
		t.Fatalf("writeReport(yaml) failed: %v", err)
	}
	var decoded simReport
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}
	if !reflect.DeepEqual(decoded, r) {
		t.Errorf("decoded report = %+v", decoded)
	}
}

func TestCheckWords(t *testing.T) {
	dict := words.NewDictionary([]string{"cat", "fox"})

	var out bytes.Buffer
	checkWords(&out, dict, []string{"fox", "xqcat", "zzz"})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out.String())
	}
	if !strings.Contains(lines[0], "word: yes") {
		t.Errorf("fox line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "word: no") || !strings.HasSuffix(lines[1], "cat") {
		t.Errorf("xqcat line = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "-") {
		t.Errorf("zzz line = %q", lines[2])
	}
}
