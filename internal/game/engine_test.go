package game

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	cat := Catalog()
	if len(cat) != 17 {
		t.Fatalf("catalog has %d commands, want 17", len(cat))
	}
	seen := make(map[string]bool)
	for i, c := range cat {
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Command != Command(i) {
			t.Fatalf("%s is entry %d but command %d", c.ID, i, c.Command)
		}
		got, ok := ParseCommand(c.ID)
		if !ok || got != c.Command {
			t.Fatalf("ParseCommand(%q) = %v, %v", c.ID, got, ok)
		}
		if c.Command.String() != c.ID {
			t.Fatalf("String() = %q, want %q", c.Command.String(), c.ID)
		}
		if c.Description == "" {
			t.Fatalf("%s has no description", c.ID)
		}
	}
	if _, ok := ParseCommand("zzz"); ok {
		t.Fatal("ParseCommand accepted an unknown id")
	}

	cat[0].ID = "changed"
	if Catalog()[0].ID != "nav" {
		t.Fatal("Catalog returned shared storage")
	}
}

func TestEveryCatalogCommandIsHandled(t *testing.T) {
	t.Parallel()

	for _, c := range Catalog() {
		f := newFixture(t)
		if err := f.run(t, c.Command); err != nil && !errors.Is(err, ErrQuit) {
			t.Fatalf("%s: %v", c.ID, err)
		}
	}
}

func TestExecutePanicsOnUnknownCommand(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	defer func() {
		if recover() == nil {
			t.Fatal("unknown command did not panic")
		}
	}()
	_ = f.run(t, commandCount)
}

func TestExecuteHonoursContext(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "1", "1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.engine.Execute(ctx, CmdNavigate); !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute = %v, want context.Canceled", err)
	}
	if len(f.input.prompts) != 0 {
		t.Fatal("cancelled command prompted")
	}
}

func TestStartShowsMission(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.log.Add("stale", MsgInfo)
	f.engine.Start()

	f.rejectOutput(t, "stale")
	f.wantOutput(t, "Mission: Destroy 1 Klingon ships in 40 stardates with 0 starbases.")
}

func TestGameOverAsksForVolunteer(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "aye")
	f.engine.rng = NewRand(7)
	f.state.Enemies = 0
	f.state.Quadrants[0][0].Enemies = 0

	if err := f.run(t, CmdShortScan); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if f.engine.Finished() {
		t.Fatal("new game is already finished")
	}
	if f.engine.state == f.state {
		t.Fatal("state was not replaced")
	}
	if len(f.input.prompts) != 1 || !strings.Contains(f.input.prompts[0], "'aye'") {
		t.Fatalf("prompts = %q", f.input.prompts)
	}
	f.wantOutput(t, "Mission: Destroy")
}

func TestGameOverWithoutVolunteerQuits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(g *GalaxyState)
		verdict string
	}{
		{"destroyed", func(g *GalaxyState) { g.Destroyed = true }, "MISSION FAILED: ENTERPRISE DESTROYED!!!"},
		{"no energy", func(g *GalaxyState) { g.Energy = 0 }, "MISSION FAILED: ENTERPRISE RAN OUT OF ENERGY."},
		{"no time", func(g *GalaxyState) { g.TimeRemaining = 0 }, "MISSION FAILED: ENTERPRISE RAN OUT OF TIME."},
		{"resigned", func(g *GalaxyState) { g.Resigned = true }, "MISSION FAILED: COMMANDER RESIGNED."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, "no")
			tt.setup(f.state)
			if err := f.run(t, CmdNavigate); !errors.Is(err, ErrQuit) {
				t.Fatalf("execute = %v, want ErrQuit", err)
			}
			f.wantOutput(t, tt.verdict)
			if len(f.input.prompts) != 1 {
				t.Fatalf("prompts = %q, want only the volunteer prompt", f.input.prompts)
			}
		})
	}
}

func TestResign(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	if err := f.run(t, CmdResign); !errors.Is(err, ErrQuit) {
		t.Fatalf("execute = %v, want ErrQuit", err)
	}
	if !f.state.Resigned {
		t.Fatal("not resigned")
	}
	f.wantOutput(t, "There were 1 Klingon Battlecruisers left at the")
	f.wantOutput(t, "The Federation is in need of a new starship commander")
}

func TestShieldTransfer(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "500", "200.9")
	if err := f.run(t, CmdShieldsUp); err != nil {
		t.Fatalf("add: %v", err)
	}
	if f.state.Energy != 2500 || f.state.ShieldLevel != 500 {
		t.Fatalf("energy/shields = %d/%d, want 2500/500", f.state.Energy, f.state.ShieldLevel)
	}
	if err := f.run(t, CmdShieldsDown); err != nil {
		t.Fatalf("sub: %v", err)
	}
	if f.state.Energy != 2700 || f.state.ShieldLevel != 300 {
		t.Fatalf("energy/shields = %d/%d, want 2700/300", f.state.Energy, f.state.ShieldLevel)
	}
	f.wantOutput(t, "Shield strength is now 300. Energy level is now 2700.")
	if !strings.Contains(f.input.prompts[1], "(1--500)") {
		t.Fatalf("sub prompt = %q", f.input.prompts[1])
	}
}

func TestShieldTransferRefusals(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "1")
	if err := f.run(t, CmdShieldsDown); err != nil {
		t.Fatalf("sub: %v", err)
	}
	f.wantOutput(t, "Invalid amount of energy.")

	f = newFixture(t, "100")
	f.state.Damage[ShieldControl] = 1
	if err := f.run(t, CmdShieldsUp); err != nil {
		t.Fatalf("add: %v", err)
	}
	f.wantOutput(t, "Shield controls are damaged. Repairs are underway.")
	if f.state.ShieldLevel != 0 || len(f.input.prompts) != 0 {
		t.Fatal("damaged shield controls moved energy")
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	if err := f.run(t, CmdHelp); err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, c := range Catalog() {
		f.wantOutput(t, c.ID)
	}
}

func TestMessageLogWrapsAndEvicts(t *testing.T) {
	t.Parallel()

	l := NewMessageLog(3, 10)
	l.Add("one two three four", MsgInfo)
	if len(l.Messages) != 2 || l.Messages[0].Text != "one two" || l.Messages[1].Text != "three four" {
		t.Fatalf("wrapped = %+v", l.Messages)
	}
	l.Add("a\nb", MsgWarning)
	if len(l.Messages) != 3 || l.Messages[0].Text != "three four" || l.Messages[2].Text != "b" {
		t.Fatalf("evicted = %+v", l.Messages)
	}
	if got := l.Recent(2); len(got) != 2 || got[0].Text != "a" {
		t.Fatalf("Recent(2) = %+v", got)
	}
	l.Clear()
	if len(l.Messages) != 0 {
		t.Fatal("Clear left messages")
	}
}

func TestMessageLogWrapKeepsSpacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		priority MsgPriority
		width    int
		want     []string
	}{
		{"inner gaps", "ab    cd  ef gh ij kl", MsgInfo, 20, []string{"ab    cd  ef gh ij", "kl"}},
		{"hanging indent", "   one two three four", MsgWarning, 12, []string{"   one two", "   three", "   four"}},
		{"long word", "abcdefghijkl xy", MsgInfo, 8, []string{"abcdefghijkl", "xy"}},
		{"report table", sectorRule + "             Region: Sherman's World", MsgReport, 40,
			[]string{sectorRule + "             Region: Sherman's World"}},
		{"legend", "       <*>  the Enterprise      +K+  Klingon battlecruiser", MsgReport, 20,
			[]string{"       <*>  the Enterprise      +K+  Klingon battlecruiser"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewMessageLog(10, tt.width)
			l.Add(tt.text, tt.priority)
			var got []string
			for _, m := range l.Messages {
				got = append(got, m.Text)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewHidesSectorsWithoutScanner(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.addEnemy(Coord{X: 1, Y: 1}, 300)
	v := f.engine.View()
	if v.Sectors[1][1] != CellEnemy || v.Sectors[3][3] != CellShip {
		t.Fatalf("view sectors = %v", v.Sectors)
	}
	if v.Condition != "RED" || v.Energy != MaxEnergy || v.Enemies != 2 {
		t.Fatalf("view = %+v", v)
	}

	f.state.Damage[ShortRangeScanner] = 1
	v = f.engine.View()
	if !v.ScannerDown || v.Sectors != ([SectorSize][SectorSize]Cell{}) {
		t.Fatal("damaged scanner still exposes the sector grid")
	}
}
