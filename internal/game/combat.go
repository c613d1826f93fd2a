package game

import (
	"context"
	"fmt"
	"math"
)

const (
	enemyFirepower = 300.0
	torpedoSpread  = 0.03 // fraction of a full turn a deflected torpedo may drift
)

// phaserHit is the shield damage delivered by energy fired over distance d.
func phaserHit(energy, d float64) int {
	return int(falloff(energy, d))
}

// firePhasers spends the requested energy once for every enemy in the quadrant,
// in list order, and hits each with it scaled by distance.
func (e *Engine) firePhasers(ctx context.Context) error {
	g := e.state
	if g.Damage[Phasers] > 0 {
		e.reject("Phasers are damaged. Repairs are underway.")
		return nil
	}
	if g.Theater.EnemyCount() == 0 {
		e.reject("There are no Klingon ships in this quadrant.")
		return nil
	}

	e.out.Add("Phasers locked on target.", MsgInfo)
	energy, ok, err := e.askFloat(ctx, fmt.Sprintf("Enter phaser energy (1--%d): ", g.Energy))
	if err != nil {
		return err
	}
	if !ok || energy < 1 || energy > float64(g.Energy) {
		e.reject("Invalid energy level.")
		return nil
	}
	e.out.Add("", MsgInfo)
	e.out.Add("Firing phasers...", MsgInfo)

	var destroyed []int
	for i := range g.Theater.EnemyCount() {
		g.Energy -= int(energy)
		if g.Energy < 0 {
			g.Energy = 0
			break
		}

		ship := g.Theater.Enemy(i)
		left := g.Theater.hitEnemy(i, phaserHit(energy, Distance(g.Sector, ship.Sector)))
		if left <= 0 {
			e.out.Add(fmt.Sprintf("Klingon ship destroyed at sector %s.", sectorLabel(ship.Sector)), MsgInfo)
			destroyed = append(destroyed, i)
		} else {
			e.out.Add(fmt.Sprintf("Hit ship at sector %s. Klingon shield strength dropped to %d.",
				sectorLabel(ship.Sector), left), MsgInfo)
		}
	}
	for i := len(destroyed) - 1; i >= 0; i-- {
		g.destroyEnemy(destroyed[i])
	}
	e.log.Debug("phasers", "energy", energy, "destroyed", len(destroyed), "remaining", g.Theater.EnemyCount())

	if g.Theater.EnemyCount() > 0 {
		e.out.Add("", MsgInfo)
		e.enemiesAttack()
	}
	e.out.Add("", MsgInfo)
	return nil
}

// fireTorpedo launches one photon torpedo along a course. One launch in three drifts
// off the requested course.
func (e *Engine) fireTorpedo(ctx context.Context) error {
	g := e.state
	switch {
	case g.Damage[TorpedoControl] > 0:
		e.reject("Photon torpedo control is damaged. Repairs are underway.")
		return nil
	case g.Torpedoes == 0:
		e.reject("Photon torpedoes exhausted.")
		return nil
	case g.Theater.EnemyCount() == 0:
		e.reject("There are no Klingon ships in this quadrant.")
		return nil
	}

	course, ok, err := e.askFloat(ctx, "Enter firing direction (1.0--9.0): ")
	if err != nil {
		return err
	}
	if !ok || course < minCourse || course > maxCourse {
		e.reject("Invalid direction.")
		return nil
	}
	e.out.Add("", MsgInfo)
	e.out.Add("Photon torpedo fired...", MsgInfo)
	g.Torpedoes--

	dx, dy := courseVector(course)
	if e.rng.IntN(3) == 0 {
		a := courseAngle(course) + (1-2*e.rng.Float64())*2*math.Pi*torpedoSpread
		dx, dy = math.Cos(a), math.Sin(a)
	}

	tr := g.plotTorpedo(dx, dy)
	for _, c := range tr.Path {
		e.out.Add("  "+sectorLabel(c), MsgReport)
	}

	switch tr.Outcome {
	case HitEnemy:
		ship := g.destroyEnemy(tr.Enemy)
		e.out.Add(fmt.Sprintf("Klingon ship destroyed at sector %s.", sectorLabel(ship.Sector)), MsgInfo)
	case HitStarbase:
		g.destroyStarbase(tr.Stop)
		e.out.Add(fmt.Sprintf("The Enterprise destroyed a Federation starbase at sector %s!",
			sectorLabel(tr.Stop)), MsgCritical)
	case HitStar:
		e.out.Add(fmt.Sprintf("The torpedo was captured by a star's gravitational field at sector %s.",
			sectorLabel(tr.Stop)), MsgInfo)
	default:
		e.out.Add("Photon torpedo failed to hit anything.", MsgInfo)
	}
	e.log.Debug("torpedo", "course", course, "outcome", tr.Outcome.String(), "stop", tr.Stop)

	if g.Theater.EnemyCount() > 0 {
		e.out.Add("", MsgInfo)
		e.enemiesAttack()
	}
	e.out.Add("", MsgInfo)
	return nil
}

// enemiesAttack lets every enemy in the quadrant fire once. Starbase shields absorb
// everything while docked. The barrage stops once the ship's shields are gone.
func (e *Engine) enemiesAttack() {
	g := e.state
	for _, ship := range g.Theater.Enemies() {
		if g.Docked {
			e.out.Add(fmt.Sprintf("Enterprise hit by ship at sector %s. No damage due to starbase shields.",
				sectorLabel(ship.Sector)), MsgWarning)
			continue
		}

		g.ShieldLevel -= int(falloff(enemyFirepower*e.rng.Float64(), Distance(g.Sector, ship.Sector)))
		if g.ShieldLevel < 0 {
			g.ShieldLevel = 0
			g.Destroyed = true
		}
		e.out.Add(fmt.Sprintf("Enterprise hit by ship at sector %s. Shields dropped to %d.",
			sectorLabel(ship.Sector), g.ShieldLevel), MsgCritical)
		if g.ShieldLevel == 0 {
			return
		}
	}
}

// sectorLabel formats a grid position the way the operator reads it, one based.
func sectorLabel(c Coord) string {
	return fmt.Sprintf("[%d,%d]", c.X+1, c.Y+1)
}
