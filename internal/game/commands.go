package game

// Command is one entry of the fixed command catalog.
type Command uint8

const (
	CmdNavigate Command = iota
	CmdShortScan
	CmdLongScan
	CmdPhasers
	CmdTorpedo
	CmdShieldsUp
	CmdShieldsDown
	CmdDamageControl
	CmdGalacticRecord
	CmdStatus
	CmdTorpedoCalc
	CmdStarbaseCalc
	CmdNavigationCalc
	CmdSave
	CmdLoad
	CmdHelp
	CmdResign
	commandCount
)

// CommandInfo describes a command for menus and key bindings.
type CommandInfo struct {
	ID          string
	Description string
	Command     Command
}

var catalog = [commandCount]CommandInfo{
	{"nav", "Warp Engine Control", CmdNavigate},
	{"srs", "Short Range Scan", CmdShortScan},
	{"lrs", "Long Range Scan", CmdLongScan},
	{"pha", "Phaser Control", CmdPhasers},
	{"tor", "Photon Torpedo Control", CmdTorpedo},
	{"add", "Add Energy To Shields", CmdShieldsUp},
	{"sub", "Subtract Energy From Shields", CmdShieldsDown},
	{"dam", "Damage Control", CmdDamageControl},
	{"rec", "Cumulative Galatic Record", CmdGalacticRecord},
	{"sta", "Status Report", CmdStatus},
	{"toc", "Photon Torpedo Calculator", CmdTorpedoCalc},
	{"bas", "Starbase Calculator", CmdStarbaseCalc},
	{"nvc", "Navigation Calculator", CmdNavigationCalc},
	{"sav", "Save Game", CmdSave},
	{"ldg", "Load Saved Game", CmdLoad},
	{"hlp", "Help", CmdHelp},
	{"xxx", "Resign Commission", CmdResign},
}

// Catalog returns the command catalog in menu order.
func Catalog() []CommandInfo {
	out := make([]CommandInfo, len(catalog))
	copy(out, catalog[:])
	return out
}

// ParseCommand looks a command up by its three letter id.
func ParseCommand(id string) (Command, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c.Command, true
		}
	}
	return 0, false
}

func (c Command) String() string {
	if c < commandCount {
		return catalog[c].ID
	}
	return "unknown"
}

// needsComputer reports whether the command is refused while the computer is damaged.
func (c Command) needsComputer() bool {
	switch c {
	case CmdGalacticRecord, CmdStatus, CmdTorpedoCalc, CmdStarbaseCalc, CmdNavigationCalc:
		return true
	}
	return false
}
