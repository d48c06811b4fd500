package wordsnake

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/engine"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/spawn"
)

// palette holds head and body colors for an actor.
type palette struct {
	head, body core.Color
}

var actorColors = map[actor.ID]palette{
	actor.Player1: {core.ColorBrightGreen, core.ColorGreen},
	actor.Player2: {core.ColorCyan, core.ColorBlue},
}

var aiColors = palette{core.ColorMagenta, core.ColorRed}

// obstacleGlyphs are drawn two characters wide, one per board cell.
var obstacleGlyphs = map[spawn.Kind]struct {
	glyph string
	color core.Color
}{
	spawn.Water: {"~~", core.ColorBlue},
	spawn.Fire:  {"^^", core.ColorRed},
	spawn.Pit:   {"()", core.ColorGray},
	spawn.Eagle: {"vv", core.ColorOrange},
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		msg := "No round"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Word Snake", msg)
		return
	}

	g.renderHUD(dst)

	if g.tooSmall() {
		w, h := g.boardSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w+2, h+2+hudRows))
		return
	}

	origin := g.boardRect(dst)
	dst.DrawBox(origin, core.ColorGray)
	g.renderObstacles(dst, origin)
	g.renderPickups(dst, origin)
	g.renderSnakes(dst, origin)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Round aborted", "Press R to restart")
	case g.snap.RoundOver:
		g.renderOverlay(dst, roundOverTitle(g.snap), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect returns the bordered board area, centered horizontally.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w, h := g.boardSize()
	return core.NewRect((dst.Width()-w-2)/2, hudRows, w+2, h+2)
}

// renderHUD draws the target word with each human's progress and all scores.
func (g *Game) renderHUD(dst *core.Screen) {
	word := strings.ToUpper(g.snap.Word)

	x := 1
	header := fmt.Sprintf("WORD %s", word)
	dst.DrawTextColored(x, 0, header, core.ColorBrightYellow)
	x += len(header) + 3
	for _, a := range g.snap.Actors {
		if a.Kind != actor.KindHuman {
			continue
		}
		label := fmt.Sprintf("%s %s", a.ID, progressMask(word, a.Progress))
		dst.DrawTextColored(x, 0, label, colorsFor(a.ID).body)
		x += len(label) + 3
	}

	x = 1
	for _, a := range g.snap.Actors {
		text := fmt.Sprintf("%s %d", a.ID, a.Score)
		switch {
		case a.Frozen > 0:
			text += fmt.Sprintf(" frozen %d", a.Frozen)
		case a.Slowed > 0:
			text += fmt.Sprintf(" slowed %d", a.Slowed)
		}
		dst.DrawTextColored(x, 1, text, colorsFor(a.ID).head)
		x += len(text) + 3
	}
	stats := fmt.Sprintf("words %d  tick %d", g.snap.WordsCompleted, g.snap.Tick)
	dst.DrawTextColored(dst.Width()-len(stats)-1, 1, stats, core.ColorGray)

	for x := range dst.Width() {
		dst.SetColored(x, 2, '─', core.ColorGray)
	}
}

// progressMask shows collected letters and underscores for the rest.
func progressMask(word string, progress int) string {
	runes := []rune(word)
	var b strings.Builder
	for i, r := range runes {
		if i < progress {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func (g *Game) renderObstacles(dst *core.Screen, r core.Rect) {
	b := g.world.Config().Bounds
	for _, o := range g.snap.Obstacles {
		if o.Kind == spawn.Eagle {
			continue
		}
		gl := obstacleGlyphs[o.Kind]
		g.drawCell(dst, r, b, o.Cell, gl.glyph, gl.color)
	}
	if g.snap.HazardActive {
		gl := obstacleGlyphs[spawn.Eagle]
		g.drawCell(dst, r, b, g.snap.Hazard, gl.glyph, gl.color)
	}
}

// renderPickups draws letters. Letters that P1 needs next are highlighted.
func (g *Game) renderPickups(dst *core.Screen, r core.Rect) {
	b := g.world.Config().Bounds
	var next rune
	if p1, ok := g.snap.Actor(actor.Player1); ok {
		word := []rune(strings.ToUpper(g.snap.Word))
		if p1.Progress < len(word) {
			next = word[p1.Progress]
		}
	}
	for _, p := range g.snap.Pickups {
		color := core.ColorYellow
		if unicode.ToUpper(p.Char) == next {
			color = core.ColorBrightYellow
		}
		g.drawCell(dst, r, b, p.Cell, string(p.Char)+" ", color)
	}
}

func (g *Game) renderSnakes(dst *core.Screen, r core.Rect) {
	b := g.world.Config().Bounds
	for _, a := range g.snap.Actors {
		pal := colorsFor(a.ID)
		if a.Frozen > 0 {
			pal = palette{core.ColorGray, core.ColorGray}
		}
		// Tail first so the head stays on top after a self-overlap.
		for i := len(a.Body) - 1; i >= 1; i-- {
			g.drawCell(dst, r, b, a.Body[i], "██", pal.body)
		}
		if len(a.Body) > 0 {
			g.drawCell(dst, r, b, a.Body[0], headGlyph(a.Dir), pal.head)
		}
	}
}

func headGlyph(d grid.Direction) string {
	switch d {
	case grid.DirUp:
		return "▲▲"
	case grid.DirDown:
		return "▼▼"
	case grid.DirLeft:
		return "◀█"
	default:
		return "█▶"
	}
}

// drawCell draws a two-character glyph at a board cell inside the border.
func (g *Game) drawCell(dst *core.Screen, r core.Rect, b grid.Bounds, c grid.Cell, glyph string, color core.Color) {
	if !b.InBounds(c) {
		return
	}
	col, row := b.Index(c)
	dst.DrawTextColored(r.X+1+col*cellWidth, r.Y+1+row, glyph, color)
}

func colorsFor(id actor.ID) palette {
	if p, ok := actorColors[id]; ok {
		return p
	}
	return aiColors
}

func roundOverTitle(s engine.Snapshot) string {
	if s.Reason == engine.ReasonNone {
		return "Round over"
	}
	if s.Culprit == 0 {
		return fmt.Sprintf("Round over: %s", s.Reason)
	}
	return fmt.Sprintf("Round over: %s hit %s", s.Culprit, s.Reason)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
