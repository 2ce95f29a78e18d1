package game

import (
	"sync"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/cbodonnell/corebreaker/pkg/log"
)

// SaveStore is the persistence contract the engine relies on.
// Implementations never fail outward: Load supplies defaults when the
// stored record is missing or malformed.
type SaveStore interface {
	Load() types.SaveRecord
	Save(record types.SaveRecord)
	Reset() types.SaveRecord
}

// Engine owns the game state and applies player input to it one command
// at a time.
type Engine struct {
	store  SaveStore
	random Random
	state  State
	lock   sync.Mutex
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	Store SaveStore
	// Random defaults to a source seeded from crypto/rand
	Random Random
}

// Result is what a single input produced.
type Result struct {
	Entries  []types.LogEntry
	OpenHelp bool
	// Summary is set when the input finished a run
	Summary *types.RunSummary
}

// NewEngine loads the save record and returns an engine in MAIN.
func NewEngine(opts NewEngineOptions) *Engine {
	rnd := opts.Random
	if rnd == nil {
		seed, err := NewSeed()
		if err != nil {
			log.Warn("Failed to generate seed, falling back to clock: %v", err)
			seed = time.Now().UnixNano()
		}
		rnd = NewRandom(seed)
	}

	return &Engine{
		store:  opts.Store,
		random: rnd,
		state:  NewState(opts.Store.Load()),
	}
}

// Intro returns the MAIN status block shown when the game first opens.
func (e *Engine) Intro() []types.LogEntry {
	e.lock.Lock()
	defer e.lock.Unlock()
	return mainStatus(e.state.Save)
}

// HandleInput resolves one raw command completely, persisting the save
// record if the command changed it.
func (e *Engine) HandleInput(raw string) Result {
	e.lock.Lock()
	defer e.lock.Unlock()

	out := Step(e.state, raw, e.random)

	switch out.Persist {
	case PersistSave:
		e.store.Save(out.State.Save.Copy())
	case PersistReset:
		out.State.Save = e.store.Reset().Copy()
		log.Info("Save record reset")
	}

	if out.State.Phase != e.state.Phase {
		log.Debug("Phase %s -> %s", e.state.Phase, out.State.Phase)
	}
	if out.Summary != nil {
		log.Info("Run finished: %s rank %s score %d (best %d)", out.Summary.Status, out.Summary.Rank, out.Summary.Score, out.Summary.BestScore)
	}

	e.state = out.State

	return Result{
		Entries:  out.Entries,
		OpenHelp: out.OpenHelp,
		Summary:  out.Summary,
	}
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.state.Copy()
}

// Phase returns the current phase.
func (e *Engine) Phase() types.Phase {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.state.Phase
}

// Save returns a copy of the current save record.
func (e *Engine) Save() types.SaveRecord {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.state.Save.Copy()
}

// Run returns a copy of the current run, or nil outside RUN and RESULT.
func (e *Engine) Run() *types.RunState {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.state.Run.Copy()
}
