package game

// View is a read-only summary of the ship for a front-end's side panels.
type View struct {
	Region        string
	Quadrant      Coord
	Sector        Coord
	Stardate      int
	TimeRemaining int
	Condition     string
	Energy        int
	Shields       int
	Torpedoes     int
	Enemies       int
	Starbases     int
	Docked        bool
	Finished      bool
	Damage        Damage

	// Sectors is only filled while the short range scanner works.
	Sectors     [SectorSize][SectorSize]Cell
	ScannerDown bool
}

// View captures the current state.
func (e *Engine) View() View {
	g := e.state
	v := View{
		Region:        g.CurrentQuadrant().Name,
		Quadrant:      g.Quadrant,
		Sector:        g.Sector,
		Stardate:      g.Stardate,
		TimeRemaining: g.TimeRemaining,
		Condition:     g.Condition(),
		Energy:        g.Energy,
		Shields:       g.ShieldLevel,
		Torpedoes:     g.Torpedoes,
		Enemies:       g.Enemies,
		Starbases:     g.Starbases,
		Docked:        g.Docked,
		Finished:      g.Finished(),
		Damage:        g.Damage,
		ScannerDown:   g.Damage[ShortRangeScanner] > 0,
	}
	if !v.ScannerDown {
		v.Sectors = g.Theater.Cells()
	}
	return v
}
