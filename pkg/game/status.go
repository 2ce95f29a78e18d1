package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/corebreaker/pkg/game/constants"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

const (
	helpOpenedMessage    = "Help opened."
	menuHelpMessage      = "Type help or press the Help button."
	resetMessage         = "Save data has been reset."
	backDuringRunMessage = "You cannot go back during a RUN. (e.g. hit, charge, focus)"
	cannotGoBackMessage  = "There is no previous menu to go back to."
	runStartMessage      = "RUN start! You approach the vault."
)

func invalidInputMessage(phase types.Phase) string {
	switch phase {
	case types.PhaseMain:
		return "Invalid input. (e.g. 1, 2, 3, garage, start)"
	case types.PhaseGarage:
		return "Invalid input. (e.g. 1, 2, 3, 4, 5, upgrade glove, upgrade hammer, upgrade drone, start, back)"
	case types.PhaseRun:
		return "Invalid input. (e.g. hit, charge, focus)"
	default:
		return "Invalid input. (e.g. 1, 2, 3, again, garage, main)"
	}
}

func mainStatus(save types.SaveRecord) []types.LogEntry {
	return []types.LogEntry{
		types.SystemEntry(fmt.Sprintf("Welcome!\nCoins: %d | Parts: %d | BestScore: %d", save.Coins, save.Parts, save.BestScore)),
		types.SystemEntry("Enter a choice:\n1) Garage\n2) Start Run\n3) Help"),
	}
}

func garageStatus(save types.SaveRecord) []types.LogEntry {
	eq := save.Equipment
	return []types.LogEntry{
		types.SystemEntry(fmt.Sprintf(
			"GARAGE\nCoins: %d | Parts: %d | Blueprints: %d | BestScore: %d",
			save.Coins, save.Parts, save.BlueprintCount(), save.BestScore,
		)),
		types.SystemEntry(fmt.Sprintf(
			"Equipment\n- Glove Lv.%d (tap damage +%d)\n- Hammer Lv.%d (charged damage +%d)\n- Drone Lv.%d (counter drain +%d)",
			eq.GloveLv, eq.GloveLv,
			eq.HammerLv, eq.HammerLv*constants.ChargedDamagePerHammerLevel,
			eq.DroneLv, eq.DroneLv,
		)),
		types.SystemEntry(fmt.Sprintf(
			"Enter a choice:\n1) Upgrade Glove %s\n2) Upgrade Hammer %s\n3) Upgrade Drone %s\n4) Start Run\n5) Back(Main)",
			upgradeLabel(eq.GloveLv), upgradeLabel(eq.HammerLv), upgradeLabel(eq.DroneLv),
		)),
	}
}

func upgradeLabel(level int) string {
	if level >= constants.EquipmentMaxLevel {
		return "(MAX)"
	}
	return fmt.Sprintf("(%d coins)", UpgradeCost(level))
}

func runPrompt(run *types.RunState) types.LogEntry {
	var b strings.Builder
	fmt.Fprintf(&b, "Stage: %s | HP: %d | Time: %.1f\n", run.Stage, run.StageHP, run.TimeLeft)
	fmt.Fprintf(&b, "Combo: %d | MaxCombo: %d | CounterGauge: %d\n", run.Combo, run.MaxCombo, run.CounterGauge)
	fmt.Fprintf(&b, "Weakness Indicator: %s", Indicator(run.PointerIndex))
	if run.Stage == types.StageCore && run.StageHP <= constants.CoreWarningHP {
		b.WriteString("\nThe core is trembling unstably...")
	}
	if run.IsStunned() {
		b.WriteString("\nYou are stunned! Your next turn is lost.")
	}
	b.WriteString("\nChoices:\n1) HIT\n2) CHARGE\n3) FOCUS")
	return types.SystemEntry(b.String())
}

// Indicator renders the weakness indicator with the pointer marked.
func Indicator(pointer int) string {
	slots := []byte(strings.Repeat(".", constants.IndicatorSlots))
	if pointer >= 0 && pointer < len(slots) {
		slots[pointer] = '^'
	}
	return "[" + string(slots) + "]"
}

func resultStatus(summary types.RunSummary) []types.LogEntry {
	blueprintText := "No blueprint"
	if summary.GotBlueprint {
		blueprintText = "Blueprint acquired!"
	}
	return []types.LogEntry{
		types.SystemEntry(fmt.Sprintf(
			"%s!\nRank: %s | Score: %d\nRewards: +%d Coins, +%d Parts, %s\nBestScore: %d",
			summary.Status, summary.Rank, summary.Score,
			summary.RewardCoins, summary.RewardParts, blueprintText,
			summary.BestScore,
		)),
		types.SystemEntry("Enter a choice:\n1) Run Again\n2) Back to Garage\n3) Back to Main"),
	}
}
