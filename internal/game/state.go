package game

import "math/rand/v2"

// Galaxy dimensions and nominal ship supplies.
const (
	GalaxySize   = 8 // quadrants per side
	SectorSize   = 8 // sectors per quadrant side
	MaxEnergy    = 3000
	MaxTorpedoes = 10

	maxEnemiesPerQuadrant = 3
	lowEnergyLevel        = 300
)

// Rand is the random source the engine draws from. Every algorithm consumes it in a
// fixed order, so a scripted source replays a game exactly. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>8|3))
}

// Coord is a column/row pair on either the galaxy or the sector grid.
type Coord struct {
	X int `msgpack:"x"`
	Y int `msgpack:"y"`
}

func (c Coord) inGrid(size int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < size && c.Y < size
}

// Subsystem identifies a ship system that can be damaged.
// The declaration order is the repair priority.
type Subsystem uint8

const (
	Navigation Subsystem = iota
	ShortRangeScanner
	LongRangeScanner
	ShieldControl
	Computer
	TorpedoControl
	Phasers
	subsystemCount
)

// Damage holds the remaining repair turns per subsystem.
type Damage [subsystemCount]int

// Total returns the sum of all damage counters.
func (d Damage) Total() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// QuadrantRecord is the aggregate, persistent view of one quadrant.
type QuadrantRecord struct {
	Name     string `msgpack:"name"`
	Stars    int    `msgpack:"stars"`
	Enemies  int    `msgpack:"enemies"`
	Starbase bool   `msgpack:"starbase"`
	Scanned  bool   `msgpack:"scanned"`
}

// code returns the three digit enemies/starbase/stars summary used by the scanners.
func (q QuadrantRecord) code() int {
	base := 0
	if q.Starbase {
		base = 1
	}
	return q.Enemies*100 + base*10 + q.Stars
}

// GalaxyState is the complete game state. The engine owns it exclusively.
type GalaxyState struct {
	Stardate      int
	TimeRemaining int
	Energy        int
	ShieldLevel   int
	Torpedoes     int
	Enemies       int // remaining enemy ships in the galaxy
	Starbases     int // remaining starbases in the galaxy

	Quadrant   Coord
	Sector     Coord
	StarbaseAt Coord // starbase sector in the current quadrant, if it has one

	Damage Damage

	Docked    bool
	Destroyed bool
	Resigned  bool

	Quadrants [GalaxySize][GalaxySize]QuadrantRecord

	// Theater is the live combat state of the current quadrant.
	Theater *Theater
}

// NewGalaxy rolls a fresh galaxy: mission parameters, quadrant names and star counts,
// then scatters enemies and starbases over the quadrants. The sector grid of the
// starting quadrant is generated as well.
func NewGalaxy(rng Rand) *GalaxyState {
	g := &GalaxyState{Theater: NewTheater()}

	g.Quadrant.X = rng.IntN(GalaxySize)
	g.Quadrant.Y = rng.IntN(GalaxySize)
	g.Sector.X = rng.IntN(SectorSize)
	g.Sector.Y = rng.IntN(SectorSize)
	g.Stardate = 2250 + rng.IntN(50)
	g.TimeRemaining = 40 + rng.IntN(10)
	g.Enemies = 15 + rng.IntN(6)
	g.Starbases = 2 + rng.IntN(3)

	g.ResetSupplies()
	g.ResetDamage()

	names := make([]string, len(quadrantNames))
	copy(names, quadrantNames)
	for y := 0; y < GalaxySize; y++ {
		for x := 0; x < GalaxySize; x++ {
			idx := rng.IntN(len(names))
			g.Quadrants[y][x] = QuadrantRecord{
				Name:  names[idx],
				Stars: 1 + rng.IntN(8),
			}
			names = append(names[:idx], names[idx+1:]...)
		}
	}

	enemies, bases := g.Enemies, g.Starbases
	for enemies > 0 || bases > 0 {
		y := rng.IntN(GalaxySize)
		x := rng.IntN(GalaxySize)
		q := &g.Quadrants[y][x]
		if bases > 0 && !q.Starbase {
			q.Starbase = true
			bases--
		}
		if enemies > 0 && q.Enemies < maxEnemiesPerQuadrant {
			q.Enemies++
			enemies--
		}
	}

	g.GenerateSector(rng)
	return g
}

// CurrentQuadrant returns the record of the quadrant the ship is in.
func (g *GalaxyState) CurrentQuadrant() *QuadrantRecord {
	return &g.Quadrants[g.Quadrant.Y][g.Quadrant.X]
}

// ResetSupplies refills energy and torpedoes.
func (g *GalaxyState) ResetSupplies() {
	g.Energy = MaxEnergy
	g.Torpedoes = MaxTorpedoes
}

// ResetDamage clears every damage counter.
func (g *GalaxyState) ResetDamage() {
	g.Damage = Damage{}
}

// Finished reports whether the mission is over for any reason.
func (g *GalaxyState) Finished() bool {
	return g.Destroyed || g.Energy == 0 || g.Enemies == 0 || g.TimeRemaining == 0 || g.Resigned
}

// Condition returns the GREEN/YELLOW/RED alert level of the current quadrant.
func (g *GalaxyState) Condition() string {
	switch {
	case g.CurrentQuadrant().Enemies > 0:
		return "RED"
	case g.Energy < lowEnergyLevel:
		return "YELLOW"
	default:
		return "GREEN"
	}
}

// spendTime advances the clock, never letting the remaining time go negative.
func (g *GalaxyState) spendTime(days int) {
	g.Stardate += days
	g.TimeRemaining = max(g.TimeRemaining-days, 0)
}

// destroyEnemy removes the i-th enemy of the theater and keeps the quadrant record
// and the galaxy counter in step with it.
func (g *GalaxyState) destroyEnemy(i int) EnemyShip {
	ship := g.Theater.removeEnemy(i)
	q := g.CurrentQuadrant()
	q.Enemies = max(q.Enemies-1, 0)
	g.Enemies = max(g.Enemies-1, 0)
	return ship
}

// destroyStarbase removes the starbase at c from the theater and both counters.
func (g *GalaxyState) destroyStarbase(c Coord) {
	g.Theater.set(c, CellEmpty)
	q := g.CurrentQuadrant()
	if q.Starbase {
		q.Starbase = false
		g.Starbases = max(g.Starbases-1, 0)
	}
}

// dockingLocation reports whether a starbase lies next to (or on) the ship's sector.
func (g *GalaxyState) dockingLocation() bool {
	for y := g.Sector.Y - 1; y <= g.Sector.Y+1; y++ {
		for x := g.Sector.X - 1; x <= g.Sector.X+1; x++ {
			if g.Theater.At(Coord{X: x, Y: y}) == CellStarbase {
				return true
			}
		}
	}
	return false
}
