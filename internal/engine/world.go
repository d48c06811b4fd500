// Package engine advances a word-snake round one tick at a time.
//
// A World owns every piece of round state: snakes, scores, the shared target
// word, pickups, obstacles, the roaming hazard and the freeze/slowdown timers.
// Advance runs the fixed per-tick order:
//
//  1. apply requested human directions (reversals are ignored)
//  2. move each human and check collisions
//  3. collect matching pickups
//  4. finish the word if a human completed it
//  5. move each AI that is not frozen toward its nearest needed letter
//  6. check AI collisions
//  7. finish the word if an AI completed it
//  8. move the hazard on its cadence and check it against human heads
//  9. notify observers with the snapshot
//  10. count down freeze and slowdown timers
//
// Given the same Config, seed and inputs, every tick is reproducible.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnake/internal/actor"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/hazard"
	"github.com/vovakirdan/wordsnake/internal/pathfind"
	"github.com/vovakirdan/wordsnake/internal/spawn"
	"github.com/vovakirdan/wordsnake/internal/words"
)

// Input holds the direction each human requested this tick.
// Actors without an entry keep their heading.
type Input map[actor.ID]grid.Direction

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithObserver registers an observer notified after every tick.
func WithObserver(o Observer) Option {
	return func(w *World) {
		if o != nil {
			w.observers = append(w.observers, o)
		}
	}
}

// World is the complete state of one round.
type World struct {
	cfg       Config
	log       *log.Logger
	observers []Observer

	order  []actor.ID // P1, [P2], AI1..n
	humans []actor.ID
	ais    []actor.ID

	rng     *rand.Rand
	spawner *spawn.Spawner
	target  *words.Target
	hazard  *hazard.Hazard

	snakes    map[actor.ID]*actor.Snake
	scores    map[actor.ID]int
	freeze    map[actor.ID]int
	slow      map[actor.ID]int
	pickups   []spawn.Pickup
	obstacles []spawn.Obstacle
	events    []Event

	seed      int64
	tick      uint64
	completed int
	over      bool
	reason    RoundEndReason
	culprit   actor.ID
}

// New validates cfg and builds a World. Call Reset before the first Advance.
func New(cfg Config, opts ...Option) (*World, error) {
	if cfg.Words == nil || cfg.Words.Len() == 0 {
		return nil, fmt.Errorf("engine: %w", words.ErrEmptyWordSet)
	}
	if cfg.Bounds.CellSize <= 0 || cfg.Bounds.Cols() <= 0 || cfg.Bounds.Rows() <= 0 {
		return nil, fmt.Errorf("engine: invalid board %dx%d with cell size %d",
			cfg.Bounds.Width, cfg.Bounds.Height, cfg.Bounds.CellSize)
	}
	if cfg.Scaler == nil {
		cfg.Scaler = LinearScaler{Base: 5, Step: 5}
	}
	if len(cfg.ObstacleKinds) == 0 {
		cfg.ObstacleKinds = spawn.AllKinds
	}

	w := &World{
		cfg: cfg,
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.humans = []actor.ID{actor.Player1}
	if cfg.SecondPlayer {
		w.humans = append(w.humans, actor.Player2)
	}
	for i := 0; i < cfg.AICount; i++ {
		w.ais = append(w.ais, actor.AI(i))
	}
	w.order = append(append([]actor.ID(nil), w.humans...), w.ais...)

	return w, nil
}

// Config returns the world configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Actors returns actor IDs in update order.
func (w *World) Actors() []actor.ID {
	return append([]actor.ID(nil), w.order...)
}

// Over reports whether the round has ended.
func (w *World) Over() bool {
	return w.over
}

// Reset starts a fresh round from seed: spawns every snake, picks the first
// word and places its letters and the obstacles.
func (w *World) Reset(seed int64) error {
	w.seed = seed
	w.rng = rand.New(rand.NewSource(seed))
	w.spawner = spawn.New(w.cfg.Bounds, w.rng, w.cfg.MaxAttempts)
	w.hazard = hazard.New(w.cfg.HazardEvery)
	w.target = words.NewTarget(w.cfg.Words.Pick(w.rng), w.order)

	w.snakes = make(map[actor.ID]*actor.Snake, len(w.order))
	w.scores = make(map[actor.ID]int, len(w.order))
	w.freeze = make(map[actor.ID]int, len(w.order))
	w.slow = make(map[actor.ID]int, len(w.order))
	w.pickups = nil
	w.obstacles = nil
	w.events = nil
	w.tick = 0
	w.completed = 0
	w.over = false
	w.reason = ReasonNone
	w.culprit = 0

	// A failed placement leaves the already placed snakes on the board and
	// the rest absent; Snapshot and the collision checks skip absent actors.
	occupied := make(grid.CellSet)
	for _, id := range w.order {
		c, err := w.spawner.SafeCell(occupied, w.cfg.SpawnMargin)
		if err != nil {
			w.end(ReasonSpawnFailed, id)
			return fmt.Errorf("engine: reset: %w", err)
		}
		dir := grid.DirRight
		if id == actor.Player2 {
			dir = grid.DirLeft
		}
		w.snakes[id] = actor.NewSnake(id, c, dir)
		occupied.Add(c)
	}

	if err := w.respawn(); err != nil {
		w.end(ReasonSpawnFailed, 0)
		return fmt.Errorf("engine: reset: %w", err)
	}

	w.log.Debug("round started", "seed", seed, "word", w.target.Word(), "actors", len(w.order))
	return nil
}

// Advance runs one tick and returns the resulting snapshot. Collisions end
// the round through the snapshot; the only error is a spawn failure, which
// also ends the round. Advancing a finished round is a no-op.
func (w *World) Advance(in Input) (Snapshot, error) {
	if w.over {
		return w.Snapshot(), nil
	}
	w.tick++
	w.events = w.events[:0]

	err := w.step(in)
	if err != nil {
		w.end(ReasonSpawnFailed, 0)
		err = fmt.Errorf("engine: tick %d: %w", w.tick, err)
	}

	snap := w.Snapshot()
	for _, o := range w.observers {
		o.OnTick(snap)
	}
	w.countDown()
	return snap, err
}

func (w *World) step(in Input) error {
	for _, id := range w.humans {
		if d, ok := in[id]; ok {
			w.snakes[id].Turn(d)
		}
	}

	for _, id := range w.humans {
		if !w.movesThisTick(id) {
			continue
		}
		s := w.snakes[id]
		head := s.Advance(s.Dir, w.cfg.Bounds.CellSize)
		if reason := w.moveCollision(id, head); reason != ReasonNone {
			w.end(reason, id)
			return nil
		}
		if err := w.enter(id, head); err != nil {
			return err
		}
		if w.target.State() == words.Completed {
			if err := w.completeWord(); err != nil {
				return err
			}
		}
	}

	for _, id := range w.ais {
		if w.freeze[id] > 0 || !w.movesThisTick(id) {
			continue
		}
		moved, err := w.moveAI(id)
		if err != nil {
			return err
		}
		if moved {
			if reason := w.headCollision(id); reason != ReasonNone {
				w.end(reason, id)
				return nil
			}
		}
		if w.target.State() == words.Completed {
			if err := w.completeWord(); err != nil {
				return err
			}
		}
	}

	if p1, ok := w.snakes[actor.Player1]; ok && w.hazard.Tick(p1.Head(), w.cfg.Bounds) {
		w.hazard.Sync(w.obstacles)
		pos, _ := w.hazard.Pos()
		for _, id := range w.humans {
			if w.snakes[id].Head() == pos {
				w.end(ReasonHazard, id)
				return nil
			}
		}
	}
	return nil
}

// movesThisTick applies the slowdown: a slowed actor only moves on even ticks.
func (w *World) movesThisTick(id actor.ID) bool {
	return w.slow[id] == 0 || w.tick%2 == 0
}

// moveAI steps id toward the nearest pickup carrying its next letter.
// With no such pickup or no path it shrinks in place.
func (w *World) moveAI(id actor.ID) (bool, error) {
	s := w.snakes[id]
	goal, ok := w.nearestPickup(id)
	if !ok {
		s.Shrink()
		return false, nil
	}
	next, ok := pathfind.NextStep(s.Head(), goal, w.blockedFor(), w.cfg.Bounds)
	if !ok {
		s.Shrink()
		return false, nil
	}

	return true, w.enter(id, next)
}

// nearestPickup returns the closest pickup, by Manhattan distance, carrying
// the letter id needs next. Ties go to the earlier pickup.
func (w *World) nearestPickup(id actor.ID) (grid.Cell, bool) {
	req, ok := w.target.Required(id)
	if !ok {
		return grid.Cell{}, false
	}
	want := unicode.ToUpper(req)
	head := w.snakes[id].Head()

	var best grid.Cell
	bestDist := -1
	for _, p := range w.pickups {
		if p.Char != want {
			continue
		}
		if d := head.Manhattan(p.Cell); bestDist < 0 || d < bestDist {
			best, bestDist = p.Cell, d
		}
	}
	return best, bestDist >= 0
}

// blockedFor is the occupancy snapshot an AI plans against: every snake body,
// its own included, plus every obstacle.
func (w *World) blockedFor() grid.CellSet {
	blocked := w.actorCells()
	for _, o := range w.obstacles {
		blocked.Add(o.Cell)
	}
	return blocked
}

// moveCollision checks a head about to enter c. The body, tail included, has
// not moved yet.
func (w *World) moveCollision(id actor.ID, c grid.Cell) RoundEndReason {
	if !w.cfg.Bounds.InBounds(c) {
		return ReasonWall
	}
	if w.snakes[id].HitsSelf(c) {
		return ReasonSelf
	}
	return w.occupiedByOthers(id, c)
}

// headCollision checks a head that has already moved.
func (w *World) headCollision(id actor.ID) RoundEndReason {
	s := w.snakes[id]
	head := s.Head()
	if !w.cfg.Bounds.InBounds(head) {
		return ReasonWall
	}
	for _, c := range s.Body[1:] {
		if c == head {
			return ReasonSelf
		}
	}
	return w.occupiedByOthers(id, head)
}

func (w *World) occupiedByOthers(id actor.ID, c grid.Cell) RoundEndReason {
	for _, other := range w.order {
		if other == id {
			continue
		}
		if sn, ok := w.snakes[other]; ok && sn.Occupies(c) {
			return ReasonActor
		}
	}
	for _, o := range w.obstacles {
		if o.Cell != c {
			continue
		}
		if o.Kind == spawn.Eagle {
			return ReasonHazard
		}
		return ReasonObstacle
	}
	return ReasonNone
}

// enter moves id's head onto c. A pickup there carrying the letter id needs
// is collected and the snake grows by one; otherwise it steps.
func (w *World) enter(id actor.ID, c grid.Cell) error {
	s := w.snakes[id]
	i, ok := w.wantedPickupAt(id, c)
	if !ok {
		s.Step(c)
		return nil
	}
	s.Grow(c)
	return w.collect(id, i)
}

// wantedPickupAt returns the index of the pickup at c if it carries the
// letter id needs next.
func (w *World) wantedPickupAt(id actor.ID, c grid.Cell) (int, bool) {
	req, ok := w.target.Required(id)
	if !ok {
		return 0, false
	}
	want := unicode.ToUpper(req)
	for i, p := range w.pickups {
		if p.Cell == c {
			return i, p.Char == want
		}
	}
	return 0, false
}

// collect consumes pickup i for id. A consumed pickup is replaced while the
// word is still being collected.
func (w *World) collect(id actor.ID, i int) error {
	p := w.pickups[i]
	outcome := w.target.Accept(id, p.Char)
	if outcome == words.Rejected {
		return nil
	}

	w.scores[id] += w.cfg.PickupReward
	w.pickups = append(w.pickups[:i], w.pickups[i+1:]...)
	w.emit(Event{Kind: EventPickup, Actor: id, Cell: p.Cell, Char: p.Char})

	if outcome == words.Progressed {
		repl, err := w.spawner.Letter(p.Char, w.occupied())
		if err != nil {
			return err
		}
		w.pickups = append(w.pickups, repl)
	}
	return nil
}

// completeWord scores the completer, penalizes its rivals and starts the
// next word cycle.
func (w *World) completeWord() error {
	id, _ := w.target.Completer()
	word := w.target.Word()

	w.scores[id] += w.cfg.CompletionBonus
	w.completed++
	w.emit(Event{Kind: EventWordCompleted, Actor: id, Word: word})
	w.penalize(id)

	w.target.Reset(w.cfg.Words.Pick(w.rng))
	w.log.Debug("word completed",
		"actor", id, "word", word, "score", w.scores[id], "next", w.target.Word())

	return w.respawn()
}

// penalize freezes every AI other than the completer. An AI completion also
// slows every human down.
func (w *World) penalize(completer actor.ID) {
	if w.cfg.FreezeTicks > 0 {
		for _, id := range w.ais {
			if id == completer {
				continue
			}
			w.freeze[id] = w.cfg.FreezeTicks
			w.emit(Event{Kind: EventFrozen, Actor: id, Ticks: w.cfg.FreezeTicks})
		}
	}
	if completer.Kind() == actor.KindAI && w.cfg.SlowTicks > 0 {
		for _, id := range w.humans {
			w.slow[id] = w.cfg.SlowTicks
		}
	}
}

// respawn replaces all letters for the active word and, when enabled, all
// obstacles. The hazard follows the first Eagle obstacle.
func (w *World) respawn() error {
	taken := w.actorCells()
	for _, o := range w.obstacles {
		taken.Add(o.Cell)
	}
	pickups, err := w.spawner.Letters(w.target.Word(), w.cfg.LettersPerChar, taken)
	if err != nil {
		return err
	}
	w.pickups = pickups

	w.obstacles = nil
	if w.cfg.ObstaclesEnabled {
		taken = w.actorCells()
		for _, p := range w.pickups {
			taken.Add(p.Cell)
		}
		count := w.cfg.Scaler.ObstacleCount(w.leadingScore())
		obstacles, err := w.spawner.Obstacles(count, w.cfg.ObstacleKinds, taken)
		if err != nil {
			return err
		}
		w.obstacles = obstacles
	}
	w.hazard.PlaceFromObstacles(w.obstacles)

	w.log.Debug("spawned", "word", w.target.Word(), "pickups", len(w.pickups), "obstacles", len(w.obstacles))
	return nil
}

func (w *World) leadingScore() int {
	best := 0
	for _, id := range w.humans {
		best = max(best, w.scores[id])
	}
	return best
}

func (w *World) actorCells() grid.CellSet {
	cells := make(grid.CellSet)
	for _, id := range w.order {
		if s, ok := w.snakes[id]; ok {
			cells.Add(s.Body...)
		}
	}
	return cells
}

// occupied returns every cell holding a snake, a pickup or an obstacle.
func (w *World) occupied() grid.CellSet {
	cells := w.blockedFor()
	for _, p := range w.pickups {
		cells.Add(p.Cell)
	}
	return cells
}

func (w *World) end(reason RoundEndReason, culprit actor.ID) {
	if w.over {
		return
	}
	w.over = true
	w.reason = reason
	w.culprit = culprit
	w.emit(Event{Kind: EventRoundOver, Actor: culprit, Reason: reason})

	kv := []any{"reason", reason, "actor", culprit, "tick", w.tick}
	for _, id := range w.order {
		kv = append(kv, id.String(), w.scores[id])
	}
	w.log.Info("round over", kv...)
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) countDown() {
	for id, n := range w.freeze {
		if n > 0 {
			w.freeze[id] = n - 1
		}
	}
	for id, n := range w.slow {
		if n > 0 {
			w.slow[id] = n - 1
		}
	}
}
