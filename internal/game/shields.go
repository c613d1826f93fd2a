package game

import (
	"context"
	"fmt"
)

// transferShields moves energy between the main reserve and the shields.
func (e *Engine) transferShields(ctx context.Context, raise bool) error {
	g := e.state
	if g.Damage[ShieldControl] > 0 {
		e.reject("Shield controls are damaged. Repairs are underway.")
		return nil
	}

	limit := g.ShieldLevel
	if raise {
		limit = g.Energy
	}
	amount, ok, err := e.askFloat(ctx, fmt.Sprintf("Enter amount of energy (1--%d): ", limit))
	if err != nil {
		return err
	}
	if !ok || amount < 1 || amount > float64(limit) {
		e.reject("Invalid amount of energy.")
		return nil
	}
	e.out.Add("", MsgInfo)

	n := int(amount)
	if !raise {
		n = -n
	}
	g.Energy -= n
	g.ShieldLevel += n

	e.out.Add(fmt.Sprintf("Shield strength is now %d. Energy level is now %d.", g.ShieldLevel, g.Energy), MsgInfo)
	e.out.Add("", MsgInfo)
	return nil
}
