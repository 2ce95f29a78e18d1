package game

import (
	"fmt"
	"math"

	"github.com/cbodonnell/corebreaker/pkg/game/constants"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// comboStep is one entry of the combo multiplier step function.
type comboStep struct {
	minCombo   int
	multiplier float64
}

// comboSteps is ordered from the highest threshold down.
var comboSteps = []comboStep{
	{minCombo: 60, multiplier: 1.6},
	{minCombo: 40, multiplier: 1.4},
	{minCombo: 20, multiplier: 1.25},
	{minCombo: 10, multiplier: 1.1},
}

// ComboMultiplier returns the damage multiplier for a combo count.
func ComboMultiplier(combo int) float64 {
	for _, step := range comboSteps {
		if combo >= step.minCombo {
			return step.multiplier
		}
	}
	return 1.0
}

// TapDamage returns the base damage of a HIT.
func TapDamage(eq types.Equipment) int {
	return constants.TapBaseDamage + eq.GloveLv
}

// ChargedDamage returns the base damage of a CHARGE.
func ChargedDamage(eq types.Equipment) int {
	return constants.ChargedBaseDamage + eq.HammerLv*constants.ChargedDamagePerHammerLevel
}

// Judge grades a timed action by the indicator's distance from the center slot.
func Judge(pointer int) (types.Grade, float64) {
	diff := pointer - constants.IndicatorCenter
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return types.GradePerfect, constants.PerfectMultiplier
	case 1:
		return types.GradeGreat, constants.GreatMultiplier
	case 2:
		return types.GradeGood, constants.GoodMultiplier
	default:
		return types.GradeMiss, constants.MissMultiplier
	}
}

// TimeCost returns the simulated seconds an action consumes.
func TimeCost(action types.Action) float64 {
	switch action {
	case types.ActionHit:
		return constants.HitTimeCost
	case types.ActionCharge:
		return constants.ChargeTimeCost
	default:
		return constants.FocusTimeCost
	}
}

// Strike describes how one action resolved against the vault.
type Strike struct {
	Action          types.Action
	Grade           types.Grade
	RawDamage       int
	GradeMultiplier float64
	ComboMultiplier float64
	FinalDamage     int
}

// ResolveStrike computes the grade and damage of an action without applying it.
// The combo multiplier reads the combo before this action updates it.
func ResolveStrike(run *types.RunState, eq types.Equipment, action types.Action) Strike {
	s := Strike{Action: action}
	if action == types.ActionFocus {
		s.RawDamage = int(math.Round(float64(TapDamage(eq)) * constants.FocusDamageFactor))
		s.Grade = types.GradeFocus
		s.GradeMultiplier = 1
	} else {
		if action == types.ActionHit {
			s.RawDamage = TapDamage(eq)
		} else {
			s.RawDamage = ChargedDamage(eq)
		}
		s.Grade, s.GradeMultiplier = Judge(run.PointerIndex)
	}
	s.ComboMultiplier = ComboMultiplier(run.Combo)
	s.FinalDamage = int(math.Round(float64(s.RawDamage) * s.GradeMultiplier * s.ComboMultiplier))
	return s
}

// resolveAction runs one accepted, non-stunned RUN action.
func (t *transition) resolveAction(action types.Action) {
	run := t.state.Run
	eq := t.state.Save.Equipment
	strike := ResolveStrike(run, eq, action)

	switch strike.Grade {
	case types.GradePerfect:
		run.Combo += 2
		run.PerfectCount++
		drainCounter(run, constants.CounterGaugePerfectDrain+eq.DroneLv)
		t.system("CRASH!! CRITICAL!!")
	case types.GradeGreat:
		run.Combo++
		t.system("BOOM! Great timing!")
	case types.GradeGood:
		run.Combo++
		t.system("Thud! Almost there!")
	case types.GradeMiss:
		run.Combo = 0
		run.CounterGauge += constants.CounterGaugeMissGain
		t.system("Whiff... the vault is preparing a counterattack!")
	case types.GradeFocus:
		drainCounter(run, constants.CounterGaugeFocusDrain+eq.DroneLv)
		t.system("Focus! Adjusting your timing.")
	}
	run.MaxCombo = max(run.MaxCombo, run.Combo)

	if strike.FinalDamage > 0 {
		run.StageHP -= strike.FinalDamage
		run.TotalDamage += strike.FinalDamage
		t.system(fmt.Sprintf("Damage: %d", strike.FinalDamage))
	}

	if run.CounterGauge >= constants.CounterGaugeMax {
		run.CounterGauge = 0
		run.StunTurns = constants.StunTurns
		t.system("The counter gauge is full! The vault strikes back.")
	}

	spendTime(run, TimeCost(action))

	if run.TimeLeft <= 0 {
		t.enterResult(types.ResultFail)
		return
	}

	if run.StageHP <= 0 {
		switch run.Stage {
		case types.StageShield:
			t.system("The shield shattered! A weak point is exposed!")
			advanceStage(run, types.StageWeakPoint)
		case types.StageWeakPoint:
			t.system("Weak point destroyed! The core is exposed!")
			advanceStage(run, types.StageCore)
		default:
			t.system("- FINAL SMASH -")
			t.system("The core exploded! Vault destroyed!")
			t.enterResult(types.ResultClear)
			return
		}
	}

	run.PointerIndex = t.rollPointer()
	t.emit(runPrompt(run))
}

// resolveStun consumes a turn while the player is stunned.
func (t *transition) resolveStun() {
	run := t.state.Run
	t.system("STUN... the vault's shockwave hits you!")
	run.StunTurns--
	run.Combo = 0
	spendTime(run, constants.StunTimeCost)
	if run.TimeLeft <= 0 {
		t.enterResult(types.ResultFail)
		return
	}
	t.emit(runPrompt(run))
}

func advanceStage(run *types.RunState, stage types.Stage) {
	run.Stage = stage
	run.StageHP = types.StageMaxHP(stage)
}

func drainCounter(run *types.RunState, amount int) {
	run.CounterGauge = max(0, run.CounterGauge-amount)
}

func spendTime(run *types.RunState, seconds float64) {
	run.TimeLeft = math.Max(0, run.TimeLeft-seconds)
}
