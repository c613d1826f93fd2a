package game

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
)

// scriptRand replays scripted values. Once a script runs dry IntN returns n-1,
// which never triggers a one-in-n event, and Float64 returns 0.5.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// scriptPrompter answers prompts in order and cancels once it runs out.
type scriptPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptPrompter) Prompt(_ context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", ErrNotConfirmed
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

// mapStore keeps snapshots in memory.
type mapStore struct {
	mu    sync.Mutex
	slots map[Slot]*Snapshot
}

func newMapStore() *mapStore {
	return &mapStore{slots: make(map[Slot]*Snapshot)}
}

func (s *mapStore) Save(_ context.Context, slot Slot, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = snap
	return nil
}

func (s *mapStore) Load(_ context.Context, slot Slot) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return snap, nil
}

func (s *mapStore) Slots(context.Context) ([]Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Slot
	for slot := range s.slots {
		if slot != DefaultSlot {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

type fixture struct {
	engine *Engine
	state  *GalaxyState
	rng    *scriptRand
	input  *scriptPrompter
	log    *MessageLog
	store  *mapStore
}

// newFixture builds an engine over a quiet galaxy: no stars or starbases anywhere,
// the ship in quadrant [4,4] sector [4,4] and a single enemy far away in quadrant
// [1,1], so the mission is not over.
func newFixture(t *testing.T, answers ...string) *fixture {
	t.Helper()
	f := &fixture{
		rng:   &scriptRand{},
		input: &scriptPrompter{answers: answers},
		log:   NewMessageLog(1000, 0),
		store: newMapStore(),
	}
	f.engine = NewEngine(Options{
		Rand:     NewRand(1),
		Display:  f.log,
		Prompter: f.input,
		Store:    f.store,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	f.engine.rng = f.rng
	f.state = quietGalaxy()
	f.engine.state = f.state
	return f
}

func quietGalaxy() *GalaxyState {
	g := &GalaxyState{
		Stardate:      2300,
		TimeRemaining: 40,
		Quadrant:      Coord{X: 3, Y: 3},
		Sector:        Coord{X: 3, Y: 3},
		Theater:       NewTheater(),
	}
	g.ResetSupplies()
	for y := range GalaxySize {
		for x := range GalaxySize {
			g.Quadrants[y][x] = QuadrantRecord{Name: quadrantNames[y*GalaxySize+x]}
		}
	}
	g.Quadrants[0][0].Enemies = 1
	g.Enemies = 1
	g.Theater.set(g.Sector, CellShip)
	return g
}

func (f *fixture) addEnemy(c Coord, shield int) {
	f.state.Theater.spawnEnemy(c, shield)
	f.state.CurrentQuadrant().Enemies++
	f.state.Enemies++
}

func (f *fixture) addStar(c Coord) {
	f.state.Theater.set(c, CellStar)
	f.state.CurrentQuadrant().Stars++
}

func (f *fixture) addStarbase(c Coord) {
	f.state.Theater.set(c, CellStarbase)
	f.state.StarbaseAt = c
	f.state.CurrentQuadrant().Starbase = true
	f.state.Starbases++
}

// moveShip puts the ship somewhere else in the current quadrant.
func (f *fixture) moveShip(c Coord) {
	f.state.Theater.set(f.state.Sector, CellEmpty)
	f.state.Sector = c
	f.state.Theater.set(c, CellShip)
}

func (f *fixture) run(t *testing.T, cmd Command) error {
	t.Helper()
	return f.engine.Execute(context.Background(), cmd)
}

func (f *fixture) output() string {
	lines := make([]string, 0, len(f.log.Messages))
	for _, m := range f.log.Messages {
		lines = append(lines, m.Text)
	}
	return strings.Join(lines, "\n")
}

func (f *fixture) wantOutput(t *testing.T, substr string) {
	t.Helper()
	if !strings.Contains(f.output(), substr) {
		t.Fatalf("output does not contain %q:\n%s", substr, f.output())
	}
}

func (f *fixture) rejectOutput(t *testing.T, substr string) {
	t.Helper()
	if strings.Contains(f.output(), substr) {
		t.Fatalf("output unexpectedly contains %q:\n%s", substr, f.output())
	}
}

// checkInvariants verifies the rules every reachable state must satisfy.
func checkInvariants(t *testing.T, g *GalaxyState) {
	t.Helper()

	total, bases := 0, 0
	names := make(map[string]bool)
	for y := range g.Quadrants {
		for _, q := range g.Quadrants[y] {
			total += q.Enemies
			if q.Starbase {
				bases++
			}
			if names[q.Name] {
				t.Fatalf("duplicate quadrant name %q", q.Name)
			}
			names[q.Name] = true
			if q.Enemies < 0 || q.Enemies > maxEnemiesPerQuadrant {
				t.Fatalf("quadrant %q has %d enemies", q.Name, q.Enemies)
			}
		}
	}
	if total != g.Enemies {
		t.Fatalf("quadrant enemies = %d, counter = %d", total, g.Enemies)
	}
	if bases != g.Starbases {
		t.Fatalf("quadrant starbases = %d, counter = %d", bases, g.Starbases)
	}

	if got, want := g.Theater.EnemyCount(), g.CurrentQuadrant().Enemies; got != want {
		t.Fatalf("theater enemies = %d, quadrant record = %d", got, want)
	}
	if got, want := g.Theater.Count(CellEnemy), g.Theater.EnemyCount(); got != want {
		t.Fatalf("enemy cells = %d, enemy list = %d", got, want)
	}
	for _, ship := range g.Theater.Enemies() {
		if g.Theater.At(ship.Sector) != CellEnemy {
			t.Fatalf("enemy at %v has no enemy cell", ship.Sector)
		}
	}
	if !g.Destroyed {
		if n := g.Theater.Count(CellShip); n != 1 {
			t.Fatalf("ship cells = %d, want 1", n)
		}
		if g.Theater.At(g.Sector) != CellShip {
			t.Fatalf("ship cell is not at sector %v", g.Sector)
		}
	}

	for name, v := range map[string]int{
		"energy":    g.Energy,
		"shields":   g.ShieldLevel,
		"torpedoes": g.Torpedoes,
		"time":      g.TimeRemaining,
	} {
		if v < 0 {
			t.Fatalf("%s = %d, want >= 0", name, v)
		}
	}
	for s, v := range g.Damage {
		if v < 0 {
			t.Fatalf("damage[%s] = %d, want >= 0", Subsystem(s), v)
		}
	}
}
