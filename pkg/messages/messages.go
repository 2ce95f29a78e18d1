package messages

import (
	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// MessageBufferSize is the largest request body accepted from a client
const MessageBufferSize = 4096

// CreateSessionRequest opens a session on a save slot.
type CreateSessionRequest struct {
	// Slot defaults to "default"
	Slot string `json:"slot,omitempty"`
}

// CommandRequest carries one raw command typed by the player.
type CommandRequest struct {
	Input string `json:"input"`
}

// CommandResponse is everything one command produced.
type CommandResponse struct {
	SessionID string            `json:"sessionID"`
	Phase     types.Phase       `json:"phase"`
	Entries   []types.LogEntry  `json:"entries"`
	OpenHelp  bool              `json:"openHelp"`
	Summary   *types.RunSummary `json:"summary,omitempty"`
}

// SessionResponse describes a session and the progression behind it.
type SessionResponse struct {
	SessionID string           `json:"sessionID"`
	Slot      string           `json:"slot"`
	Phase     types.Phase      `json:"phase"`
	Save      types.SaveRecord `json:"save"`
	Run       *types.RunState  `json:"run,omitempty"`
	// Entries holds the intro status block when the session was just created
	Entries []types.LogEntry `json:"entries,omitempty"`
}

// HelpResponse holds the help overlay text.
type HelpResponse struct {
	Help string `json:"help"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HelpText is the help overlay shown when the engine signals OpenHelp.
const HelpText = `Core Breaker: Text is a vault-breaking game played entirely by typing commands.

OBJECTIVE
Break the Shield, then the WeakPoint, then the Core before time runs out, and score as high as you can.

PHASES
MAIN / GARAGE / RUN / RESULT

COMMANDS
- help: open this help
- reset: reset your save data
- back: return to the previous menu
- during a RUN: hit, charge, focus

JUDGEMENT
The closer the indicator is to the center, the better: Perfect! A higher combo multiplies your damage.

SCORE
Total damage + Perfect bonus + max combo + time left.

REWARDS
Coins and parts every run, and a chance at a Blueprint.

SAVING
All progress is saved automatically.`
