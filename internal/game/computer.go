package game

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// formatReading prints a course or distance with at most two decimals.
func formatReading(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func (e *Engine) statusReport() {
	g := e.state
	e.out.Clear()
	e.out.Add("", MsgInfo)
	e.out.Add(fmt.Sprintf("%29s: %d", "Time Remaining", g.TimeRemaining), MsgReport)
	e.out.Add(fmt.Sprintf("%29s: %d", "Klingon Ships Remaining", g.Enemies), MsgReport)
	e.out.Add(fmt.Sprintf("%29s: %d", "Starbases", g.Starbases), MsgReport)
	for s := range subsystemCount {
		e.out.Add(fmt.Sprintf("%29s: %d", s.String()+" Damage", g.Damage[s]), MsgReport)
	}
	e.out.Add("", MsgInfo)
}

// torpedoCalculator lists the firing course to every enemy in the quadrant.
func (e *Engine) torpedoCalculator() {
	g := e.state
	e.out.Clear()
	e.out.Add("", MsgInfo)
	if g.Theater.EnemyCount() == 0 {
		e.reject("There are no Klingon ships in this quadrant.")
		return
	}
	for _, ship := range g.Theater.Enemies() {
		e.out.Add(fmt.Sprintf("Direction %s: Klingon ship in sector %s.",
			formatReading(ComputeDirection(g.Sector, ship.Sector)), sectorLabel(ship.Sector)), MsgReport)
	}
	e.out.Add("", MsgInfo)
}

// starbaseCalculator gives course and warp factor to the quadrant's starbase.
func (e *Engine) starbaseCalculator() {
	g := e.state
	e.out.Clear()
	e.out.Add("", MsgInfo)
	if !g.CurrentQuadrant().Starbase {
		e.reject("There are no starbases in this quadrant.")
		return
	}
	e.out.Add(fmt.Sprintf("Starbase in sector %s.", sectorLabel(g.StarbaseAt)), MsgReport)
	e.out.Add("Direction: "+formatReading(ComputeDirection(g.Sector, g.StarbaseAt)), MsgReport)
	e.out.Add("Distance:  "+formatReading(Distance(g.Sector, g.StarbaseAt)/SectorSize), MsgReport)
	e.out.Add("", MsgInfo)
}

// navigationCalculator gives course and distance to another quadrant.
func (e *Engine) navigationCalculator(ctx context.Context) error {
	g := e.state
	e.out.Clear()
	e.out.Add("", MsgInfo)
	e.out.Add(fmt.Sprintf("Enterprise located in quadrant %s.", sectorLabel(g.Quadrant)), MsgReport)
	e.out.Add("", MsgInfo)

	x, ok, err := e.askFloat(ctx, "Enter destination quadrant X (1--8): ")
	if err != nil {
		return err
	}
	if !ok || x < 1 || x > GalaxySize {
		e.reject("Invalid X coordinate.")
		return nil
	}
	y, ok, err := e.askFloat(ctx, "Enter destination quadrant Y (1--8): ")
	if err != nil {
		return err
	}
	if !ok || y < 1 || y > GalaxySize {
		e.reject("Invalid Y coordinate.")
		return nil
	}
	e.out.Add("", MsgInfo)

	dest := Coord{X: int(x) - 1, Y: int(y) - 1}
	if dest == g.Quadrant {
		e.reject("That is the current location of the Enterprise.")
		return nil
	}
	e.out.Add("Direction: "+formatReading(ComputeDirection(g.Quadrant, dest)), MsgReport)
	e.out.Add("Distance:  "+formatReading(Distance(g.Quadrant, dest)), MsgReport)
	e.out.Add("", MsgInfo)
	return nil
}
