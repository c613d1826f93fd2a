package game

import (
	"context"
	"fmt"
)

const maxWarp = 8.0

// navigate moves the ship along a course at a warp factor. Leaving the quadrant
// regenerates the sector grid and costs a stardate; staying inside it gives any
// enemies present a free shot.
func (e *Engine) navigate(ctx context.Context) error {
	g := e.state

	limit := maxWarp
	if g.Damage[Navigation] > 0 {
		limit = float64(2+e.rng.IntN(9)) / 10
		e.out.Add(fmt.Sprintf("Warp engines damaged. Maximum warp factor: %g", limit), MsgWarning)
		e.out.Add("", MsgInfo)
	}

	course, ok, err := e.askFloat(ctx, "Enter course (1.0--9.0): ")
	if err != nil {
		return err
	}
	if !ok || course < minCourse || course > maxCourse {
		e.reject("Invalid course.")
		return nil
	}

	warp, ok, err := e.askFloat(ctx, fmt.Sprintf("Enter warp factor (0.1--%g): ", limit))
	if err != nil {
		return err
	}
	if !ok || warp < 0.1 || warp > limit {
		e.reject("Invalid warp factor.")
		return nil
	}
	e.out.Add("", MsgInfo)

	distance := warp * SectorSize
	cost := int(distance)
	if cost >= g.Energy {
		e.reject("Unable to comply. Insufficient energy to travel that speed.")
		return nil
	}
	e.out.Add("Warp engines engaged.", MsgInfo)
	e.out.Add("", MsgInfo)
	g.Energy -= cost

	from := g.Quadrant
	dx, dy := courseVector(course)
	tr := g.plotWarp(distance*dx, distance*dy)

	g.Theater.set(g.Sector, CellEmpty)
	g.Sector = tr.Stop
	if tr.Quadrant != from {
		g.Quadrant = tr.Quadrant
		g.GenerateSector(e.rng)
	} else {
		g.Theater.set(g.Sector, CellShip)
	}

	g.Docked = g.dockingLocation()
	if g.Docked {
		g.ResetSupplies()
		g.ResetDamage()
		g.ShieldLevel = 0
	}
	if g.Quadrant != from {
		g.spendTime(1)
	}

	e.log.Debug("warp",
		"course", course,
		"warp", warp,
		"outcome", tr.Outcome.String(),
		"quadrant", g.Quadrant,
		"sector", g.Sector,
	)

	e.shortRangeScan()

	switch tr.Outcome {
	case Exhausted:
	case OutOfBounds:
		e.reject("Course would go outside the universe.")
	default:
		e.reject("Encountered obstacle within quadrant.")
	}

	switch {
	case g.Docked:
		e.out.Add("Lowering shields as part of docking sequence...", MsgInfo)
		e.out.Add("Enterprise successfully docked with starbase.", MsgInfo)
		e.out.Add("", MsgInfo)
	case g.CurrentQuadrant().Enemies > 0 && g.Quadrant == from:
		e.enemiesAttack()
		e.out.Add("", MsgInfo)
	case !e.repairDamage():
		e.induceDamage(randomSubsystem)
	}
	return nil
}
