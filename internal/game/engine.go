package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacehole-rogue/supertrek/assets"
)

// ErrQuit is returned by Execute when the mission is over and nobody volunteers
// for the next one.
var ErrQuit = errors.New("no volunteer for a new mission")

var banner = []string{
	`  ____  _   _ ____  _____ ____    _____ ____  _____ _  __`,
	` / ___|| | | |  _ \| ____|  _ \  |_   _|  _ \| ____| |/ /`,
	` \___ \| | | | |_) |  _| | |_) |   | | | |_) |  _| | ' / `,
	`  ___) | |_| |  __/| |___|  _ <    | | |  _ <| |___| . \ `,
	` |____/ \___/|_|   |_____|_| \_\   |_| |_| \_\_____|_|\_\`,
	``,
	`              ________________        _`,
	`              \__(=======/_=_/____.--'-'--.___`,
	`                         \ \   ',--,-.___.----'`,
	`                       .--'\\--'../`,
	`                      '---._____.|]`,
}

// Options configures an Engine. Display and Prompter are required.
type Options struct {
	Rand     Rand
	Display  Display
	Prompter Prompter
	Store    Store
	Logger   *slog.Logger
}

// Engine runs the game. It owns the galaxy state exclusively and resolves one
// command at a time.
type Engine struct {
	state *GalaxyState
	rng   Rand
	out   Display
	in    Prompter
	store Store
	log   *slog.Logger
}

// NewEngine creates an engine with a freshly rolled galaxy. A nil Rand is seeded
// from the clock.
func NewEngine(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		rng:   rng,
		out:   opts.Display,
		in:    opts.Prompter,
		store: opts.Store,
		log:   logger.With("component", "engine"),
	}
	e.newGame()
	return e
}

func (e *Engine) newGame() {
	e.state = NewGalaxy(e.rng)
	e.log.Debug("new game",
		"enemies", e.state.Enemies,
		"starbases", e.state.Starbases,
		"time", e.state.TimeRemaining,
		"quadrant", e.state.Quadrant,
	)
}

// Start clears the display and shows the title and mission orders.
func (e *Engine) Start() {
	e.out.Clear()
	for _, line := range banner {
		e.out.Add(line, MsgReport)
	}
	e.out.Add("", MsgInfo)
	e.printMission()
}

// Snapshot copies the full game state.
func (e *Engine) Snapshot() *Snapshot {
	return e.state.Snapshot()
}

// Restore replaces the game state with a snapshot. An invalid snapshot leaves the
// current game untouched.
func (e *Engine) Restore(s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.state = restoreGalaxy(s)
	return nil
}

// Finished reports whether the current mission is over.
func (e *Engine) Finished() bool {
	return e.state.Finished()
}

// Execute resolves one command. Once the mission is over the next command, whatever
// it is, asks for a new commander instead; ErrQuit means the answer was no. Context
// errors abort the command before it changes anything.
func (e *Engine) Execute(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.log.Debug("command", "id", cmd.String())

	e.printGameStatus()
	if e.state.Finished() {
		return e.offerNewGame(ctx)
	}

	if cmd.needsComputer() && e.state.Damage[Computer] > 0 {
		e.reject("The main computer is damaged. Repairs are underway.")
		return nil
	}

	switch cmd {
	case CmdNavigate:
		return e.navigate(ctx)
	case CmdShortScan:
		e.shortRangeScan()
	case CmdLongScan:
		e.longRangeScan()
	case CmdPhasers:
		return e.firePhasers(ctx)
	case CmdTorpedo:
		return e.fireTorpedo(ctx)
	case CmdShieldsUp:
		return e.transferShields(ctx, true)
	case CmdShieldsDown:
		return e.transferShields(ctx, false)
	case CmdDamageControl:
		return e.damageControl(ctx)
	case CmdGalacticRecord:
		e.galacticRecord()
	case CmdStatus:
		e.statusReport()
	case CmdTorpedoCalc:
		e.torpedoCalculator()
	case CmdStarbaseCalc:
		e.starbaseCalculator()
	case CmdNavigationCalc:
		return e.navigationCalculator(ctx)
	case CmdSave:
		return e.saveGame(ctx)
	case CmdLoad:
		return e.loadGame(ctx)
	case CmdHelp:
		e.out.Clear()
		e.out.Add(assets.Help, MsgReport)
	case CmdResign:
		e.resign()
		return e.offerNewGame(ctx)
	default:
		panic(fmt.Sprintf("game: command %d is not in the catalog", cmd))
	}
	return nil
}

// reject prints a refusal followed by a blank line.
func (e *Engine) reject(msg string) {
	e.out.Add(msg, MsgWarning)
	e.out.Add("", MsgInfo)
}

func (e *Engine) printMission() {
	g := e.state
	e.out.Add(fmt.Sprintf("Mission: Destroy %d Klingon ships in %d stardates with %d starbases.",
		g.Enemies, g.TimeRemaining, g.Starbases), MsgInfo)
	e.out.Add("", MsgInfo)
}

// printGameStatus prints the end-of-mission verdict, if there is one.
func (e *Engine) printGameStatus() {
	g := e.state
	var verdict string
	switch {
	case g.Destroyed:
		verdict = "MISSION FAILED: ENTERPRISE DESTROYED!!!"
	case g.Energy == 0:
		verdict = "MISSION FAILED: ENTERPRISE RAN OUT OF ENERGY."
	case g.Enemies == 0:
		verdict = "MISSION ACCOMPLISHED: ALL KLINGON SHIPS DESTROYED. WELL DONE!!!"
	case g.TimeRemaining == 0:
		verdict = "MISSION FAILED: ENTERPRISE RAN OUT OF TIME."
	case g.Resigned:
		verdict = "MISSION FAILED: COMMANDER RESIGNED."
	default:
		return
	}

	priority := MsgCritical
	if g.Enemies == 0 && !g.Destroyed && g.Energy > 0 {
		priority = MsgInfo
	}
	e.out.Add(verdict, priority)
	for range 3 {
		e.out.Add("", MsgInfo)
	}
}

// offerNewGame asks for a volunteer. "aye" rolls a new galaxy; anything else,
// including a cancelled prompt, ends the program with ErrQuit.
func (e *Engine) offerNewGame(ctx context.Context) error {
	e.out.Add("The Federation is in need of a new starship commander", MsgInfo)
	e.out.Add(" for a similar mission.", MsgInfo)
	e.out.Add("", MsgInfo)

	answer, _, err := e.ask(ctx, "If there is a volunteer, let them step forward and enter 'aye': ")
	if err != nil {
		return err
	}
	e.out.Add("", MsgInfo)
	if answer != "aye" {
		e.log.Info("mission over, no volunteer")
		return ErrQuit
	}

	e.newGame()
	e.Start()
	return nil
}

func (e *Engine) resign() {
	e.state.Resigned = true
	e.out.Add(fmt.Sprintf("There were %d Klingon Battlecruisers left at the", e.state.Enemies), MsgInfo)
	e.out.Add(" end of your mission.", MsgInfo)
	e.out.Add("", MsgInfo)
	e.out.Add("", MsgInfo)
}
