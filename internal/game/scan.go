package game

import (
	"fmt"
	"strings"
)

const (
	sectorRule    = "-=--=--=--=--=--=--=--=-"
	longRangeRule = "-------------------"
	recordRule    = "-------------------------------------------------"
)

var cellGlyphs = [...]string{
	CellEmpty:    "   ",
	CellShip:     "<*>",
	CellStar:     " * ",
	CellStarbase: ">!<",
	CellEnemy:    "+K+",
}

// shortRangeScan clears the display and draws the current quadrant next to the
// ship's status.
func (e *Engine) shortRangeScan() {
	g := e.state
	e.out.Clear()

	if g.Damage[ShortRangeScanner] > 0 {
		e.out.Add("Short range scanner is damaged. Repairs are underway.", MsgWarning)
		e.out.Add("", MsgInfo)
		e.out.Add("", MsgInfo)
		return
	}

	q := g.CurrentQuadrant()
	q.Scanned = true

	status := [SectorSize]string{
		fmt.Sprintf("           Quadrant: %s", sectorLabel(g.Quadrant)),
		fmt.Sprintf("             Sector: %s", sectorLabel(g.Sector)),
		fmt.Sprintf("           Stardate: %d", g.Stardate),
		fmt.Sprintf("     Time remaining: %d", g.TimeRemaining),
		fmt.Sprintf("          Condition: %s", g.Condition()),
		fmt.Sprintf("             Energy: %d", g.Energy),
		fmt.Sprintf("            Shields: %d", g.ShieldLevel),
		fmt.Sprintf("   Photon Torpedoes: %d", g.Torpedoes),
	}

	e.out.Add(fmt.Sprintf("%s             Region: %s", sectorRule, q.Name), MsgReport)
	cells := g.Theater.Cells()
	for y, row := range cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(cellGlyphs[c])
		}
		sb.WriteString(status[y])
		e.out.Add(sb.String(), MsgReport)
	}
	e.out.Add(fmt.Sprintf("%s             Docked: %t", sectorRule, g.Docked), MsgReport)

	switch {
	case q.Enemies > 0:
		plural := "s"
		if q.Enemies == 1 {
			plural = ""
		}
		e.out.Add("", MsgInfo)
		e.out.Add(fmt.Sprintf("Condition RED: Klingon ship%s detected.", plural), MsgCritical)
		if g.ShieldLevel == 0 && !g.Docked {
			e.out.Add("Warning: Shields are down.", MsgCritical)
		}
	case g.Energy < lowEnergyLevel:
		e.out.Add("", MsgInfo)
		e.out.Add("Condition YELLOW: Low energy level.", MsgWarning)
	}
	e.out.Add("", MsgInfo)
}

// longRangeScan shows the summary code of the quadrants around the ship and marks
// them scanned. Quadrants beyond the galaxy edge read 000.
func (e *Engine) longRangeScan() {
	g := e.state
	e.out.Clear()

	if g.Damage[LongRangeScanner] > 0 {
		e.reject("Long range scanner is damaged. Repairs are underway.")
		return
	}

	e.out.Add(longRangeRule, MsgReport)
	for y := g.Quadrant.Y - 1; y <= g.Quadrant.Y+1; y++ {
		var sb strings.Builder
		for x := g.Quadrant.X - 1; x <= g.Quadrant.X+1; x++ {
			code := 0
			if c := (Coord{X: x, Y: y}); c.inGrid(GalaxySize) {
				q := &g.Quadrants[y][x]
				q.Scanned = true
				code = q.code()
			}
			fmt.Fprintf(&sb, "| %03d ", code)
		}
		sb.WriteString("|")
		e.out.Add(sb.String(), MsgReport)
		e.out.Add(longRangeRule, MsgReport)
	}
	e.out.Add("", MsgInfo)
}

// galacticRecord shows every quadrant scanned so far.
func (e *Engine) galacticRecord() {
	g := e.state
	e.out.Clear()
	e.out.Add("", MsgInfo)
	e.out.Add(recordRule, MsgReport)
	for y := range g.Quadrants {
		var sb strings.Builder
		for _, q := range g.Quadrants[y] {
			code := 0
			if q.Scanned {
				code = q.code()
			}
			fmt.Fprintf(&sb, "| %03d ", code)
		}
		sb.WriteString("|")
		e.out.Add(sb.String(), MsgReport)
		e.out.Add(recordRule, MsgReport)
	}
	e.out.Add("", MsgInfo)
}
