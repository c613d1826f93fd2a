package render

import (
	"fmt"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

// Screen geometry in cells. Both front-ends use an 80x45 grid.
const (
	ScreenCols = 80
	ScreenRows = 45

	ConsoleWidth = 56 // message log wrap width
	consoleRows  = 37
	panelX       = 59
	statusRow    = 12
	commandsRow  = 23
	inputRow     = 40
)

// Frame is everything DrawScreen needs for one picture.
type Frame struct {
	Title     string
	Messages  []game.Message
	View      game.View
	Prompt    string
	Prompting bool
	Busy      bool
	Input     string
	Notice    string
	Catalog   []game.CommandInfo
	Selected  int
}

// ConsoleLines is how many messages fit in the console.
func ConsoleLines() int { return consoleRows }

// DrawScreen composes the whole screen into buf.
func DrawScreen(buf *CellBuffer, f Frame) {
	buf.Clear()
	v := f.View

	buf.WriteString(2, 0, f.Title, ColorWhite, ColorBlack)
	if v.Region != "" {
		buf.WriteString(22, 0, fmt.Sprintf("[ %s ]", v.Region), ColorLightCyan, ColorBlack)
	}
	buf.WriteString(ScreenCols-17, 0, fmt.Sprintf("Stardate %d", v.Stardate), ColorDarkGray, ColorBlack)

	// Console
	buf.DrawBox(0, 1, ConsoleWidth+2, consoleRows+2, "Log", ColorDarkGray)
	msgs := f.Messages
	if len(msgs) > consoleRows {
		msgs = msgs[len(msgs)-consoleRows:]
	}
	for i, m := range msgs {
		buf.WriteClipped(1, 2+i, ConsoleWidth, m.Text, MsgColor(m.Priority), ColorBlack)
	}

	drawInput(buf, f)
	drawStatus(buf, v)
	drawCommands(buf, f)

	buf.WriteString(1, ScreenRows-1,
		"Type a command id or pick one with Up/Down, Enter: run  Esc: cancel/quit",
		ColorDarkGray, ColorBlack)
}

func drawInput(buf *CellBuffer, f Frame) {
	buf.DrawBox(0, inputRow+1, ConsoleWidth+2, 3, "", ColorDarkGray)
	row := inputRow + 2
	switch {
	case f.Prompting:
		line := f.Prompt + f.Input + "_"
		if over := len(line) - ConsoleWidth; over > 0 {
			line = line[over:]
		}
		buf.WriteClipped(1, row, ConsoleWidth, line, ColorLightGreen, ColorBlack)
	case f.Busy:
		buf.WriteString(1, row, "...", ColorDarkGray, ColorBlack)
	default:
		buf.WriteClipped(1, row, ConsoleWidth, "Command: "+f.Input+"_", ColorWhite, ColorBlack)
	}
	if f.Notice != "" {
		buf.WriteClipped(1, inputRow, ConsoleWidth, f.Notice, ColorYellow, ColorBlack)
	}
}

func drawStatus(buf *CellBuffer, v game.View) {
	RenderSector(buf, v, panelX, 1)

	buf.WriteString(panelX, statusRow-1, "--- Ship ---", ColorLightCyan, ColorBlack)
	rows := []struct {
		label string
		value string
		color uint8
	}{
		{"Condition", v.Condition, ConditionColor(v.Condition)},
		{"Quadrant", fmt.Sprintf("%d,%d", v.Quadrant.X+1, v.Quadrant.Y+1), ColorLightGray},
		{"Sector", fmt.Sprintf("%d,%d", v.Sector.X+1, v.Sector.Y+1), ColorLightGray},
		{"Energy", fmt.Sprint(v.Energy), barColor(v.Energy, game.MaxEnergy)},
		{"Shields", fmt.Sprint(v.Shields), ColorLightBlue},
		{"Torpedoes", fmt.Sprint(v.Torpedoes), ColorLightGray},
		{"Klingons", fmt.Sprint(v.Enemies), ColorLightRed},
		{"Starbases", fmt.Sprint(v.Starbases), ColorLightGreen},
		{"Time left", fmt.Sprint(v.TimeRemaining), barColor(v.TimeRemaining, 40)},
	}
	for i, r := range rows {
		buf.WriteString(panelX, statusRow+i, fmt.Sprintf("%-10s", r.label), ColorDarkGray, ColorBlack)
		buf.WriteString(panelX+10, statusRow+i, r.value, r.color, ColorBlack)
	}
	if v.Docked {
		buf.WriteString(panelX, statusRow+len(rows), "DOCKED", ColorLightGreen, ColorBlack)
	} else if n := damagedCount(v.Damage); n > 0 {
		buf.WriteString(panelX, statusRow+len(rows), fmt.Sprintf("%d systems down", n), ColorYellow, ColorBlack)
	}
}

func drawCommands(buf *CellBuffer, f Frame) {
	buf.WriteString(panelX, commandsRow, "--- Commands ---", ColorLightCyan, ColorBlack)
	for i, c := range f.Catalog {
		fg, bg := uint8(ColorLightGray), uint8(ColorBlack)
		if i == f.Selected {
			fg, bg = ColorBlack, ColorLightGray
		}
		buf.WriteString(panelX, commandsRow+1+i, c.ID, ColorLightCyan, bg)
		buf.WriteClipped(panelX+4, commandsRow+1+i, ScreenCols-panelX-4, c.Description, fg, bg)
	}
}

// barColor goes yellow under half and red under a fifth of limit.
func barColor(v, limit int) uint8 {
	switch {
	case v*5 <= limit:
		return ColorLightRed
	case v*2 <= limit:
		return ColorYellow
	default:
		return ColorLightGray
	}
}

func damagedCount(d game.Damage) int {
	n := 0
	for _, v := range d {
		if v > 0 {
			n++
		}
	}
	return n
}
