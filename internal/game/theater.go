package game

import "github.com/mlange-42/ark/ecs"

// Cell is the content of one sector of the current quadrant.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellStar
	CellStarbase
	CellEnemy
)

// Position is the sector an enemy ship occupies.
type Position struct {
	X, Y int
}

// Shield is an enemy ship's remaining shield strength.
type Shield struct {
	Level int
}

// EnemyShip is a value copy of one enemy in the current quadrant.
type EnemyShip struct {
	Sector Coord `msgpack:"sector"`
	Shield int   `msgpack:"shield"`
}

// Theater is the live state of the current quadrant: the sector grid plus the enemy
// ships in it. Enemies are entities in a small ECS world; order keeps their list order,
// which phasers and counter-attacks iterate in.
type Theater struct {
	cells   [SectorSize][SectorSize]Cell
	world   *ecs.World
	pos     *ecs.Map[Position]
	shields *ecs.Map[Shield]
	order   []ecs.Entity
}

// NewTheater creates an empty quadrant.
func NewTheater() *Theater {
	w := ecs.NewWorld(16)
	return &Theater{
		world:   w,
		pos:     ecs.NewMap[Position](w),
		shields: ecs.NewMap[Shield](w),
	}
}

// At returns the cell at c. Sectors outside the grid read as empty.
func (t *Theater) At(c Coord) Cell {
	if !c.inGrid(SectorSize) {
		return CellEmpty
	}
	return t.cells[c.Y][c.X]
}

// Cells returns a copy of the sector grid, indexed [y][x].
func (t *Theater) Cells() [SectorSize][SectorSize]Cell {
	return t.cells
}

func (t *Theater) set(c Coord, cell Cell) {
	t.cells[c.Y][c.X] = cell
}

// Count returns how many sectors hold the given cell kind.
func (t *Theater) Count(kind Cell) int {
	n := 0
	for y := range t.cells {
		for x := range t.cells[y] {
			if t.cells[y][x] == kind {
				n++
			}
		}
	}
	return n
}

// EnemyCount returns the number of enemies alive in the quadrant.
func (t *Theater) EnemyCount() int {
	return len(t.order)
}

// Enemy returns a copy of the i-th enemy.
func (t *Theater) Enemy(i int) EnemyShip {
	e := t.order[i]
	p := t.pos.Get(e)
	return EnemyShip{
		Sector: Coord{X: p.X, Y: p.Y},
		Shield: t.shields.Get(e).Level,
	}
}

// Enemies returns copies of all enemies in list order.
func (t *Theater) Enemies() []EnemyShip {
	ships := make([]EnemyShip, 0, len(t.order))
	for i := range t.order {
		ships = append(ships, t.Enemy(i))
	}
	return ships
}

// enemyAt returns the list index of the enemy at c, or -1.
func (t *Theater) enemyAt(c Coord) int {
	for i, e := range t.order {
		p := t.pos.Get(e)
		if p.X == c.X && p.Y == c.Y {
			return i
		}
	}
	return -1
}

func (t *Theater) spawnEnemy(c Coord, shield int) {
	e := ecs.NewMap2[Position, Shield](t.world).NewEntity(
		&Position{X: c.X, Y: c.Y},
		&Shield{Level: shield},
	)
	t.order = append(t.order, e)
	t.set(c, CellEnemy)
}

// hitEnemy subtracts amount from the i-th enemy's shield and returns what is left.
func (t *Theater) hitEnemy(i, amount int) int {
	s := t.shields.Get(t.order[i])
	s.Level -= amount
	return s.Level
}

func (t *Theater) removeEnemy(i int) EnemyShip {
	ship := t.Enemy(i)
	t.world.RemoveEntity(t.order[i])
	t.order = append(t.order[:i], t.order[i+1:]...)
	t.set(ship.Sector, CellEmpty)
	return ship
}

// reset empties the grid and drops every enemy.
func (t *Theater) reset() {
	for _, e := range t.order {
		t.world.RemoveEntity(e)
	}
	t.order = t.order[:0]
	t.cells = [SectorSize][SectorSize]Cell{}
}
