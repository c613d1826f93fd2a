package game

// Outcome tags how a walk across the sector grid ended.
type Outcome uint8

const (
	Exhausted   Outcome = iota // ran its full length
	OutOfBounds                // left the sector grid, or the galaxy for a warp
	HitEnemy
	HitStarbase
	HitStar
)

func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "exhausted"
	case OutOfBounds:
		return "out of bounds"
	case HitEnemy:
		return "hit enemy"
	case HitStarbase:
		return "hit starbase"
	case HitStar:
		return "hit star"
	}
	return "unknown"
}

// Trajectory is the result of walking a course across the grid.
type Trajectory struct {
	Outcome Outcome

	// Quadrant and Stop locate where the walk ended. For a hit, Stop is the impact
	// sector of a torpedo, or the last free sector a warp reached before it.
	Quadrant Coord
	Stop     Coord

	// Enemy is the theater index of the ship hit, when Outcome is HitEnemy.
	Enemy int

	// Path lists each distinct sector a torpedo crossed, in order.
	Path []Coord
}

const (
	warpSteps   = 1000
	torpedoStep = 1.0 / 20
	galaxyEdge  = GalaxySize*SectorSize - 1
)

// obstacle reports what a walk would hit at c. The player's own cell never blocks.
func (t *Theater) obstacle(c Coord) (Outcome, int, bool) {
	switch t.At(c) {
	case CellEnemy:
		if i := t.enemyAt(c); i >= 0 {
			return HitEnemy, i, true
		}
	case CellStarbase:
		return HitStarbase, -1, true
	case CellStar:
		return HitStar, -1, true
	}
	return Exhausted, -1, false
}

// plotWarp walks the ship's displacement (dx, dy), in sector units, across galaxy
// coordinates. Only sectors inside the starting quadrant are checked for obstacles;
// once the path leaves it the endpoint is clamped to the galaxy.
func (g *GalaxyState) plotWarp(dx, dy float64) Trajectory {
	x := float64(g.Quadrant.X*SectorSize + g.Sector.X)
	y := float64(g.Quadrant.Y*SectorSize + g.Sector.Y)
	vx, vy := dx/warpSteps, dy/warpSteps
	last := g.Sector

	blocked := func(outcome Outcome, enemy int) Trajectory {
		return Trajectory{Outcome: outcome, Quadrant: g.Quadrant, Stop: last, Enemy: enemy}
	}

	for range warpSteps {
		x += vx
		y += vy
		gx, gy := roundGrid(x), roundGrid(y)
		if gx/SectorSize != g.Quadrant.X || gy/SectorSize != g.Quadrant.Y {
			continue
		}
		s := Coord{X: gx % SectorSize, Y: gy % SectorSize}
		if s.X < 0 || s.Y < 0 {
			return blocked(OutOfBounds, -1)
		}
		if out, idx, hit := g.Theater.obstacle(s); hit {
			return blocked(out, idx)
		}
		last = s
	}

	gx := roundGrid(min(max(x, 0), galaxyEdge))
	gy := roundGrid(min(max(y, 0), galaxyEdge))
	end := Trajectory{
		Outcome:  Exhausted,
		Quadrant: Coord{X: gx / SectorSize, Y: gy / SectorSize},
		Stop:     Coord{X: gx % SectorSize, Y: gy % SectorSize},
		Enemy:    -1,
	}
	// Clamping can pull an endpoint that left the galaxy back into this quadrant
	// onto a sector the walk never checked.
	if end.Quadrant == g.Quadrant {
		if out, idx, hit := g.Theater.obstacle(end.Stop); hit {
			return blocked(out, idx)
		}
	}
	return end
}

// plotTorpedo walks a torpedo from the ship's sector along (dx, dy) until it hits
// something or leaves the grid.
func (g *GalaxyState) plotTorpedo(dx, dy float64) Trajectory {
	x, y := float64(g.Sector.X), float64(g.Sector.Y)
	vx, vy := dx*torpedoStep, dy*torpedoStep
	tr := Trajectory{Quadrant: g.Quadrant, Enemy: -1}
	last := Coord{X: -1, Y: -1}

	for x >= 0 && y >= 0 && roundGrid(x) < SectorSize && roundGrid(y) < SectorSize {
		c := Coord{X: roundGrid(x), Y: roundGrid(y)}
		if c != last {
			tr.Path = append(tr.Path, c)
			last = c
		}
		if out, idx, hit := g.Theater.obstacle(c); hit {
			tr.Outcome, tr.Stop, tr.Enemy = out, c, idx
			return tr
		}
		x += vx
		y += vy
	}

	tr.Outcome = OutOfBounds
	tr.Stop = last
	return tr
}
