package types

import "github.com/cbodonnell/corebreaker/pkg/game/constants"

// RunState is the transient state of one timed attempt on the vault.
type RunState struct {
	TimeLeft     float64      `json:"timeLeft"`
	Stage        Stage        `json:"stageIndex"`
	StageHP      int          `json:"stageHP"`
	Combo        int          `json:"combo"`
	MaxCombo     int          `json:"maxCombo"`
	CounterGauge int          `json:"counterGauge"`
	StunTurns    int          `json:"stunTurns"`
	PointerIndex int          `json:"pointerIndex"`
	TotalDamage  int          `json:"totalDamage"`
	PerfectCount int          `json:"perfectCount"`
	Status       ResultStatus `json:"resultStatus"`
}

// NewRunState returns the state of a fresh run with the indicator at pointer.
func NewRunState(pointer int) *RunState {
	return &RunState{
		TimeLeft:     constants.RunStartTime,
		Stage:        StageShield,
		StageHP:      StageMaxHP(StageShield),
		PointerIndex: pointer,
		Status:       ResultFail,
	}
}

// Copy returns a copy of the run state
func (r *RunState) Copy() *RunState {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// IsStunned returns true while the player's input is replaced by stun resolution
func (r *RunState) IsStunned() bool {
	return r.StunTurns > 0
}

// StageMaxHP returns the full health pool of a stage.
func StageMaxHP(stage Stage) int {
	switch stage {
	case StageShield:
		return constants.ShieldHP
	case StageWeakPoint:
		return constants.WeakPointHP
	default:
		return constants.CoreHP
	}
}

// RunSummary is the scored outcome of a finished run.
type RunSummary struct {
	Status       ResultStatus `json:"status"`
	Score        int          `json:"score"`
	Rank         Rank         `json:"rank"`
	RewardCoins  int          `json:"rewardCoins"`
	RewardParts  int          `json:"rewardParts"`
	GotBlueprint bool         `json:"gotBlueprint"`
	BestScore    int          `json:"bestScore"`
}
