package game

import (
	"context"
	"fmt"
)

// randomSubsystem asks induceDamage to pick the failing system itself.
const randomSubsystem = subsystemCount

var subsystemNames = [subsystemCount]string{
	"Warp Engine",
	"Short Range Scanner",
	"Long Range Scanner",
	"Shield Controls",
	"Main Computer",
	"Photon Torpedo Control",
	"Phaser",
}

var malfunctionMessages = [subsystemCount]string{
	"Warp engines are malfunctioning.",
	"Short range scanner is malfunctioning.",
	"Long range scanner is malfunctioning.",
	"Shield controls are malfunctioning.",
	"The main computer is malfunctioning.",
	"Photon torpedo controls are malfunctioning.",
	"Phasers are malfunctioning.",
}

var repairMessages = [subsystemCount]string{
	"Warp engines have been repaired.",
	"Short range scanner has been repaired.",
	"Long range scanner has been repaired.",
	"Shield controls have been repaired.",
	"The main computer has been repaired.",
	"Photon torpedo controls have been repaired.",
	"Phasers have been repaired.",
}

func (s Subsystem) String() string {
	if s < subsystemCount {
		return subsystemNames[s]
	}
	return "unknown"
}

// induceDamage fails a subsystem one time in seven for one to five turns. A target of
// randomSubsystem lets the roll choose which one.
func (e *Engine) induceDamage(target Subsystem) {
	if e.rng.IntN(7) > 0 {
		return
	}
	turns := 1 + e.rng.IntN(5)
	if target >= subsystemCount {
		target = Subsystem(e.rng.IntN(int(subsystemCount)))
	}

	e.state.Damage[target] = turns
	e.out.Add(malfunctionMessages[target], MsgWarning)
	e.out.Add("", MsgInfo)
	e.log.Debug("malfunction", "subsystem", target.String(), "turns", turns)
}

// repairDamage works one turn off the first damaged subsystem in priority order.
// It reports whether anything was under repair.
func (e *Engine) repairDamage() bool {
	d := &e.state.Damage
	for s := range subsystemCount {
		if d[s] == 0 {
			continue
		}
		d[s]--
		if d[s] == 0 {
			e.out.Add(repairMessages[s], MsgInfo)
		}
		e.out.Add("", MsgInfo)
		return true
	}
	return false
}

// repairCost is the number of stardates a full repair order takes.
func repairCost(d Damage) int {
	return 1 + d.Total()/7
}

// damageControl offers to repair every subsystem at once for a time penalty.
func (e *Engine) damageControl(ctx context.Context) error {
	g := e.state
	cost := repairCost(g.Damage)
	e.out.Add("Technicians standing by to effect repairs to your ship", MsgInfo)
	e.out.Add(fmt.Sprintf("Estimated time to repair: %d stardates.", cost), MsgInfo)

	answer, ok, err := e.ask(ctx, "Will you authorize the repair order (Y/N)? ")
	if err != nil {
		return err
	}
	if !ok || answer != "y" {
		return nil
	}

	g.ResetDamage()
	g.spendTime(cost)
	e.log.Debug("repair order", "cost", cost)
	return nil
}
