package game

import (
	"errors"
	"fmt"
)

// SnapshotVersion is bumped whenever the Snapshot layout changes incompatibly.
const SnapshotVersion = 1

// ErrBadSnapshot is returned by Restore for a snapshot that breaks the state rules.
var ErrBadSnapshot = errors.New("invalid snapshot")

// Snapshot is a self-contained copy of the full game state.
type Snapshot struct {
	Version int `msgpack:"version"`

	Stardate      int `msgpack:"stardate"`
	TimeRemaining int `msgpack:"time_remaining"`
	Energy        int `msgpack:"energy"`
	ShieldLevel   int `msgpack:"shield_level"`
	Torpedoes     int `msgpack:"torpedoes"`
	Enemies       int `msgpack:"enemies"`
	Starbases     int `msgpack:"starbases"`

	Quadrant   Coord  `msgpack:"quadrant"`
	Sector     Coord  `msgpack:"sector"`
	StarbaseAt Coord  `msgpack:"starbase_at"`
	Damage     Damage `msgpack:"damage"`

	Docked    bool `msgpack:"docked"`
	Destroyed bool `msgpack:"destroyed"`
	Resigned  bool `msgpack:"resigned"`

	Quadrants [GalaxySize][GalaxySize]QuadrantRecord `msgpack:"quadrants"`
	Sectors   [SectorSize][SectorSize]Cell           `msgpack:"sectors"`
	Ships     []EnemyShip                            `msgpack:"ships"`
}

// Snapshot copies the current state.
func (g *GalaxyState) Snapshot() *Snapshot {
	return &Snapshot{
		Version:       SnapshotVersion,
		Stardate:      g.Stardate,
		TimeRemaining: g.TimeRemaining,
		Energy:        g.Energy,
		ShieldLevel:   g.ShieldLevel,
		Torpedoes:     g.Torpedoes,
		Enemies:       g.Enemies,
		Starbases:     g.Starbases,
		Quadrant:      g.Quadrant,
		Sector:        g.Sector,
		StarbaseAt:    g.StarbaseAt,
		Damage:        g.Damage,
		Docked:        g.Docked,
		Destroyed:     g.Destroyed,
		Resigned:      g.Resigned,
		Quadrants:     g.Quadrants,
		Sectors:       g.Theater.Cells(),
		Ships:         g.Theater.Enemies(),
	}
}

// Validate checks that the snapshot describes a consistent game.
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: version %d", ErrBadSnapshot, s.Version)
	}
	if !s.Quadrant.inGrid(GalaxySize) || !s.Sector.inGrid(SectorSize) {
		return fmt.Errorf("%w: ship outside the galaxy", ErrBadSnapshot)
	}
	for _, v := range []int{s.TimeRemaining, s.Energy, s.ShieldLevel, s.Torpedoes, s.Enemies, s.Starbases} {
		if v < 0 {
			return fmt.Errorf("%w: negative counter", ErrBadSnapshot)
		}
	}
	for _, v := range s.Damage {
		if v < 0 {
			return fmt.Errorf("%w: negative damage", ErrBadSnapshot)
		}
	}

	total := 0
	names := make(map[string]struct{}, GalaxySize*GalaxySize)
	for y := range s.Quadrants {
		for _, q := range s.Quadrants[y] {
			total += q.Enemies
			names[q.Name] = struct{}{}
		}
	}
	if total != s.Enemies {
		return fmt.Errorf("%w: %d enemies in quadrants, counter says %d", ErrBadSnapshot, total, s.Enemies)
	}
	if len(names) != GalaxySize*GalaxySize {
		return fmt.Errorf("%w: duplicate quadrant names", ErrBadSnapshot)
	}

	here := s.Quadrants[s.Quadrant.Y][s.Quadrant.X]
	if len(s.Ships) != here.Enemies {
		return fmt.Errorf("%w: %d ships in sector, quadrant says %d", ErrBadSnapshot, len(s.Ships), here.Enemies)
	}
	occupied := make(map[Coord]struct{}, len(s.Ships))
	for _, ship := range s.Ships {
		if !ship.Sector.inGrid(SectorSize) || s.Sectors[ship.Sector.Y][ship.Sector.X] != CellEnemy {
			return fmt.Errorf("%w: ship at %v has no sector", ErrBadSnapshot, ship.Sector)
		}
		if _, dup := occupied[ship.Sector]; dup {
			return fmt.Errorf("%w: two ships at %v", ErrBadSnapshot, ship.Sector)
		}
		occupied[ship.Sector] = struct{}{}
	}

	ships, enemyCells := 0, 0
	for y := range s.Sectors {
		for _, c := range s.Sectors[y] {
			if c > CellEnemy {
				return fmt.Errorf("%w: unknown cell %d", ErrBadSnapshot, c)
			}
			switch c {
			case CellShip:
				ships++
			case CellEnemy:
				enemyCells++
			}
		}
	}
	if enemyCells != len(s.Ships) {
		return fmt.Errorf("%w: %d enemy cells for %d ships", ErrBadSnapshot, enemyCells, len(s.Ships))
	}
	if !s.Destroyed && (ships != 1 || s.Sectors[s.Sector.Y][s.Sector.X] != CellShip) {
		return fmt.Errorf("%w: ship cell missing", ErrBadSnapshot)
	}
	return nil
}

// restoreGalaxy rebuilds a live state from a validated snapshot.
func restoreGalaxy(s *Snapshot) *GalaxyState {
	g := &GalaxyState{
		Stardate:      s.Stardate,
		TimeRemaining: s.TimeRemaining,
		Energy:        s.Energy,
		ShieldLevel:   s.ShieldLevel,
		Torpedoes:     s.Torpedoes,
		Enemies:       s.Enemies,
		Starbases:     s.Starbases,
		Quadrant:      s.Quadrant,
		Sector:        s.Sector,
		StarbaseAt:    s.StarbaseAt,
		Damage:        s.Damage,
		Docked:        s.Docked,
		Destroyed:     s.Destroyed,
		Resigned:      s.Resigned,
		Quadrants:     s.Quadrants,
		Theater:       NewTheater(),
	}
	g.Theater.cells = s.Sectors
	for _, ship := range s.Ships {
		g.Theater.spawnEnemy(ship.Sector, ship.Shield)
	}
	return g
}
