package game

// Sector layout generation for the quadrant the ship is in.

// quadrantNames is the pool quadrant names are drawn from without replacement.
// It must hold at least GalaxySize*GalaxySize unique names.
var quadrantNames = []string{
	"Aldebaran", "Altair IV", "Andoria", "Antares", "Archanis", "Argelius II",
	"Ardana", "Bajor", "Benecia", "Beta Renner", "Betazed", "Bolarus IX",
	"Capella IV", "Cardassia", "Ceti Alpha V", "Cestus III", "Coridan", "Deneb",
	"Deneva", "Draylax", "Elas", "Eminiar VII", "Exo III", "Ferenginar",
	"Gamma Hydra", "Gideon", "Halka", "Janus VI", "Kaferia", "Kessik",
	"Khitomer", "Kronos", "Ligon II", "Luna Gate", "Makus III", "Memory Alpha",
	"Minara", "Mintaka III", "Nimbus III", "Omicron Ceti", "Organia", "Orion",
	"Pacifica", "Pollux IV", "Psi 2000", "Qualor II", "Regula", "Remus",
	"Rigel VII", "Risa", "Romulus", "Rura Penthe", "Sarpeidon", "Scalos",
	"Sherman's World", "Sigma Iotia", "Sirius", "Talos IV", "Tantalus V", "Tellar",
	"Theta Cygni", "Triskelion", "Trill", "Turkana IV", "Tyrus VII", "Valo",
	"Vega", "Vulcan", "Wolf 359", "Xindus", "Yadera", "Zeta Reticuli",
}

// GenerateSector rebuilds the theater from the current quadrant record: the ship is
// placed first, then random free sectors receive the starbase, the stars and finally
// the enemy ships.
func (g *GalaxyState) GenerateSector(rng Rand) {
	q := g.CurrentQuadrant()
	starbase, stars, enemies := q.Starbase, q.Stars, q.Enemies

	t := g.Theater
	t.reset()
	t.set(g.Sector, CellShip)

	for starbase || stars > 0 || enemies > 0 {
		y := rng.IntN(SectorSize)
		x := rng.IntN(SectorSize)
		c := Coord{X: x, Y: y}
		if !t.regionFree(c) {
			continue
		}

		switch {
		case starbase:
			starbase = false
			t.set(c, CellStarbase)
			g.StarbaseAt = c
		case stars > 0:
			t.set(c, CellStar)
			stars--
		default:
			t.spawnEnemy(c, 300+rng.IntN(200))
			enemies--
		}
	}
}

// regionFree reports whether c is empty and not wedged between occupied sectors on
// both sides in any of the three rows around it.
func (t *Theater) regionFree(c Coord) bool {
	for y := c.Y - 1; y <= c.Y+1; y++ {
		left := t.At(Coord{X: c.X - 1, Y: y})
		right := t.At(Coord{X: c.X + 1, Y: y})
		if left != CellEmpty && right != CellEmpty {
			return false
		}
	}
	return t.At(c) == CellEmpty
}
