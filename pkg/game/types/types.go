package types

import (
	"fmt"
	"strings"
)

// Phase is a state of the game's top level state machine.
type Phase uint8

const (
	PhaseMain Phase = iota
	PhaseGarage
	PhaseRun
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseMain:
		return "MAIN"
	case PhaseGarage:
		return "GARAGE"
	case PhaseRun:
		return "RUN"
	case PhaseResult:
		return "RESULT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{PhaseMain, PhaseGarage, PhaseRun, PhaseResult} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase: %s", text)
}

// Action is a player action during a run.
type Action uint8

const (
	ActionHit Action = iota
	ActionCharge
	ActionFocus
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "HIT"
	case ActionCharge:
		return "CHARGE"
	case ActionFocus:
		return "FOCUS"
	default:
		return "UNKNOWN"
	}
}

// Grade is the timing judgement of an action.
type Grade uint8

const (
	GradeMiss Grade = iota
	GradeGood
	GradeGreat
	GradePerfect
	// GradeFocus is never judged against the indicator
	GradeFocus
)

func (g Grade) String() string {
	switch g {
	case GradeMiss:
		return "Miss"
	case GradeGood:
		return "Good"
	case GradeGreat:
		return "Great"
	case GradePerfect:
		return "Perfect"
	case GradeFocus:
		return "FOCUS"
	default:
		return "Unknown"
	}
}

// Stage is one of the sequential vault defenses.
type Stage uint8

const (
	StageShield Stage = iota
	StageWeakPoint
	StageCore
)

func (s Stage) String() string {
	switch s {
	case StageShield:
		return "Shield"
	case StageWeakPoint:
		return "WeakPoint"
	case StageCore:
		return "Core"
	default:
		return "Unknown"
	}
}

// ResultStatus is how a run ended.
type ResultStatus uint8

const (
	ResultFail ResultStatus = iota
	ResultClear
)

func (r ResultStatus) String() string {
	if r == ResultClear {
		return "CLEAR"
	}
	return "FAIL"
}

// MarshalText encodes the status by name
func (r ResultStatus) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ResultStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "CLEAR":
		*r = ResultClear
	case "FAIL":
		*r = ResultFail
	default:
		return fmt.Errorf("unknown result status: %s", text)
	}
	return nil
}

// Rank is the letter grade of a run score.
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
)

// NormalizeInput trims and lower cases a raw command.
func NormalizeInput(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
