package game

import (
	"github.com/cbodonnell/corebreaker/pkg/game/constants"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// PersistOp is the persistence effect requested by a transition.
type PersistOp uint8

const (
	PersistNone PersistOp = iota
	// PersistSave asks for the outcome's save record to be written
	PersistSave
	// PersistReset asks for the stored record to be restored to defaults
	PersistReset
)

// State is everything the engine owns between two inputs.
// Run is non-nil during RUN, and kept read-only during RESULT for display.
type State struct {
	Phase types.Phase
	Save  types.SaveRecord
	Run   *types.RunState
}

// NewState returns the MAIN state for a loaded save record.
func NewState(save types.SaveRecord) State {
	return State{
		Phase: types.PhaseMain,
		Save:  save.Copy(),
	}
}

// Copy returns a deep copy of the state
func (s State) Copy() State {
	return State{
		Phase: s.Phase,
		Save:  s.Save.Copy(),
		Run:   s.Run.Copy(),
	}
}

// Outcome is the result of applying one input to a state.
type Outcome struct {
	State    State
	Entries  []types.LogEntry
	OpenHelp bool
	Persist  PersistOp
	// Summary is set when the input finished a run
	Summary *types.RunSummary
}

// Step applies one raw input to s and returns the next state along with
// the transcript entries and effects it produced. s is never modified.
func Step(s State, raw string, rnd Random) Outcome {
	text := types.NormalizeInput(raw)
	if text == "" {
		return Outcome{State: s.Copy()}
	}

	t := newTransition(s, rnd)
	t.emit(types.PlayerEntry(raw))

	// a stunned turn swallows the input whatever it is
	if t.state.Phase == types.PhaseRun && t.state.Run.IsStunned() {
		t.resolveStun()
		return t.outcome()
	}

	t.apply(ParseCommand(t.state.Phase, text))
	return t.outcome()
}

// transition accumulates the effects of one Step.
type transition struct {
	state    State
	rnd      Random
	entries  []types.LogEntry
	openHelp bool
	persist  PersistOp
	summary  *types.RunSummary
}

func newTransition(s State, rnd Random) *transition {
	return &transition{
		state: s.Copy(),
		rnd:   rnd,
	}
}

func (t *transition) outcome() Outcome {
	return Outcome{
		State:    t.state,
		Entries:  t.entries,
		OpenHelp: t.openHelp,
		Persist:  t.persist,
		Summary:  t.summary,
	}
}

func (t *transition) emit(entries ...types.LogEntry) {
	t.entries = append(t.entries, entries...)
}

func (t *transition) system(text string) {
	t.emit(types.SystemEntry(text))
}

func (t *transition) markSave() {
	if t.persist == PersistNone {
		t.persist = PersistSave
	}
}

func (t *transition) apply(cmd Command) {
	switch cmd {
	case CommandHelp:
		t.system(helpOpenedMessage)
		t.openHelp = true
		return
	case CommandReset:
		t.reset()
		return
	case CommandBack:
		t.back()
		return
	case CommandUnknown:
		t.system(invalidInputMessage(t.state.Phase))
		return
	}

	switch t.state.Phase {
	case types.PhaseMain:
		switch cmd {
		case CommandGarage:
			t.enterGarage()
		case CommandStart:
			t.enterRun()
		case CommandMenuHelp:
			t.system(menuHelpMessage)
		}
	case types.PhaseGarage:
		switch cmd {
		case CommandUpgradeGlove, CommandUpgradeHammer, CommandUpgradeDrone:
			t.upgrade(slotFor(cmd))
		case CommandStart:
			t.enterRun()
		case CommandMain:
			t.enterMain()
		}
	case types.PhaseRun:
		t.resolveAction(actionFor(cmd))
	case types.PhaseResult:
		switch cmd {
		case CommandStart:
			t.enterRun()
		case CommandGarage:
			t.enterGarage()
		case CommandMain:
			t.enterMain()
		}
	}
}

func (t *transition) reset() {
	t.state.Save = types.DefaultSaveRecord()
	t.state.Run = nil
	t.persist = PersistReset
	t.system(resetMessage)
	t.enterMain()
}

func (t *transition) back() {
	switch t.state.Phase {
	case types.PhaseGarage, types.PhaseResult:
		t.enterMain()
	case types.PhaseRun:
		t.system(backDuringRunMessage)
	default:
		t.system(cannotGoBackMessage)
	}
}

func (t *transition) enterMain() {
	t.state.Phase = types.PhaseMain
	t.state.Run = nil
	t.emit(mainStatus(t.state.Save)...)
}

func (t *transition) enterGarage() {
	t.state.Phase = types.PhaseGarage
	t.state.Run = nil
	t.emit(garageStatus(t.state.Save)...)
}

func (t *transition) enterRun() {
	t.state.Phase = types.PhaseRun
	t.state.Run = types.NewRunState(t.rollPointer())
	t.system(runStartMessage)
	t.emit(runPrompt(t.state.Run))
}

func (t *transition) rollPointer() int {
	return t.rnd.Intn(constants.IndicatorSlots)
}
