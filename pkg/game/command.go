package game

import "github.com/cbodonnell/corebreaker/pkg/game/types"

// Command is a parsed player input.
type Command uint8

const (
	CommandUnknown Command = iota
	CommandHelp
	CommandReset
	CommandBack
	// CommandMenuHelp is the MAIN menu's help entry, which only points at the help command
	CommandMenuHelp
	CommandGarage
	CommandStart
	CommandMain
	CommandUpgradeGlove
	CommandUpgradeHammer
	CommandUpgradeDrone
	CommandHit
	CommandCharge
	CommandFocus
)

func (c Command) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandReset:
		return "reset"
	case CommandBack:
		return "back"
	case CommandMenuHelp:
		return "menu-help"
	case CommandGarage:
		return "garage"
	case CommandStart:
		return "start"
	case CommandMain:
		return "main"
	case CommandUpgradeGlove:
		return "upgrade-glove"
	case CommandUpgradeHammer:
		return "upgrade-hammer"
	case CommandUpgradeDrone:
		return "upgrade-drone"
	case CommandHit:
		return "hit"
	case CommandCharge:
		return "charge"
	case CommandFocus:
		return "focus"
	default:
		return "unknown"
	}
}

var globalCommands = map[string]Command{
	"help":  CommandHelp,
	"reset": CommandReset,
	"back":  CommandBack,
}

var phaseCommands = map[types.Phase]map[string]Command{
	types.PhaseMain: {
		"1":      CommandGarage,
		"garage": CommandGarage,
		"2":      CommandStart,
		"start":  CommandStart,
		"3":      CommandMenuHelp,
	},
	types.PhaseGarage: {
		"1":              CommandUpgradeGlove,
		"upgrade glove":  CommandUpgradeGlove,
		"2":              CommandUpgradeHammer,
		"upgrade hammer": CommandUpgradeHammer,
		"3":              CommandUpgradeDrone,
		"upgrade drone":  CommandUpgradeDrone,
		"4":              CommandStart,
		"start":          CommandStart,
		"5":              CommandMain,
	},
	types.PhaseRun: {
		"1":      CommandHit,
		"hit":    CommandHit,
		"2":      CommandCharge,
		"charge": CommandCharge,
		"3":      CommandFocus,
		"focus":  CommandFocus,
	},
	types.PhaseResult: {
		"1":      CommandStart,
		"again":  CommandStart,
		"2":      CommandGarage,
		"garage": CommandGarage,
		"3":      CommandMain,
		"main":   CommandMain,
	},
}

// ParseCommand maps normalized input to a command valid in phase.
// Global commands win over phase shortcuts.
func ParseCommand(phase types.Phase, text string) Command {
	if cmd, ok := globalCommands[text]; ok {
		return cmd
	}
	if cmd, ok := phaseCommands[phase][text]; ok {
		return cmd
	}
	return CommandUnknown
}

func actionFor(cmd Command) types.Action {
	switch cmd {
	case CommandCharge:
		return types.ActionCharge
	case CommandFocus:
		return types.ActionFocus
	default:
		return types.ActionHit
	}
}

func slotFor(cmd Command) types.EquipmentSlot {
	switch cmd {
	case CommandUpgradeHammer:
		return types.EquipmentHammer
	case CommandUpgradeDrone:
		return types.EquipmentDrone
	default:
		return types.EquipmentGlove
	}
}
