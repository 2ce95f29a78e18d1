package game

import (
	"strings"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// scriptedRandom replays fixed draws. Once a script runs out Intn returns 0
// and Float64 returns 0.99.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func runState(mutate func(r *types.RunState)) State {
	run := types.NewRunState(3)
	if mutate != nil {
		mutate(run)
	}
	return State{
		Phase: types.PhaseRun,
		Save:  types.DefaultSaveRecord(),
		Run:   run,
	}
}

func joinedText(entries []types.LogEntry) string {
	texts := make([]string, 0, len(entries))
	for _, entry := range entries {
		texts = append(texts, entry.Text)
	}
	return strings.Join(texts, "\n")
}

func systemTexts(entries []types.LogEntry) []string {
	var texts []string
	for _, entry := range entries {
		if entry.Type == types.LogEntryTypeSystem {
			texts = append(texts, entry.Text)
		}
	}
	return texts
}
