package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/game"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/cbodonnell/corebreaker/pkg/messages"
	"github.com/cbodonnell/corebreaker/pkg/repositories"
	"github.com/google/uuid"
)

// DefaultSlot is used when a session is opened without naming a slot
const DefaultSlot = "default"

// Session is one player's engine bound to a save slot
type Session struct {
	ID        uuid.UUID
	Slot      string
	CreatedAt time.Time
	engine    *game.Engine

	// ctx is cancelled once the session is removed
	ctx    context.Context
	cancel context.CancelFunc
	// serializes commands arriving over HTTP and websocket
	lock   sync.Mutex
	closed bool
}

// Context is done once the session has been removed.
func (s *Session) Context() context.Context {
	return s.ctx
}

// HandleInput runs one command through the session's engine.
// It fails with ErrSessionClosed once the session has been removed.
func (s *Session) HandleInput(input string) (messages.CommandResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return messages.CommandResponse{}, &ErrSessionClosed{SessionID: s.ID}
	}

	result := s.engine.HandleInput(input)
	return messages.CommandResponse{
		SessionID: s.ID.String(),
		Phase:     s.engine.Phase(),
		Entries:   nonNilEntries(result.Entries),
		OpenHelp:  result.OpenHelp,
		Summary:   result.Summary,
	}, nil
}

// close waits for an in-flight command, then refuses every later one.
func (s *Session) close() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.closed = true
	s.cancel()
}

// Snapshot describes the session's current phase and progression.
func (s *Session) Snapshot() messages.SessionResponse {
	return messages.SessionResponse{
		SessionID: s.ID.String(),
		Slot:      s.Slot,
		Phase:     s.engine.Phase(),
		Save:      s.engine.Save(),
		Run:       s.engine.Run(),
	}
}

func nonNilEntries(entries []types.LogEntry) []types.LogEntry {
	if entries == nil {
		return []types.LogEntry{}
	}
	return entries
}

// SessionManager manages open game sessions.
// A save slot is held by at most one session at a time.
type SessionManager struct {
	ctx          context.Context
	repository   repositories.Repository
	newRandom    func() game.Random
	storeTimeout time.Duration

	sessions     map[uuid.UUID]*Session
	slots        map[string]uuid.UUID
	sessionsLock sync.RWMutex
}

// NewSessionManagerOptions contains options for creating a new SessionManager.
type NewSessionManagerOptions struct {
	Repository repositories.Repository
	// NewRandom supplies each session's random source. Engines seed
	// themselves from crypto/rand when nil.
	NewRandom func() game.Random
	// StoreTimeout bounds each repository call, see repositories.DefaultStoreTimeout
	StoreTimeout time.Duration
}

// NewSessionManager creates a new SessionManager.
// ctx is the base context for every repository call made by its sessions.
func NewSessionManager(ctx context.Context, opts NewSessionManagerOptions) *SessionManager {
	return &SessionManager{
		ctx:          ctx,
		repository:   opts.Repository,
		newRandom:    opts.NewRandom,
		storeTimeout: opts.StoreTimeout,
		sessions:     make(map[uuid.UUID]*Session),
		slots:        make(map[string]uuid.UUID),
	}
}

// CreateSession loads the slot's record and opens a session on it.
// It returns the session and the intro status block.
func (sm *SessionManager) CreateSession(slot string) (*Session, []types.LogEntry, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	if err := repositories.ValidateSlot(slot); err != nil {
		return nil, nil, err
	}

	// reserve the slot so the record can be loaded without holding the lock
	id := uuid.New()
	sm.sessionsLock.Lock()
	if holder, ok := sm.slots[slot]; ok {
		sm.sessionsLock.Unlock()
		return nil, nil, &ErrSlotInUse{Slot: slot, SessionID: holder}
	}
	sm.slots[slot] = id
	sm.sessionsLock.Unlock()

	store := repositories.NewSaveStore(sm.ctx, repositories.NewSaveStoreOptions{
		Repository: sm.repository,
		Slot:       slot,
		Timeout:    sm.storeTimeout,
	})
	engineOpts := game.NewEngineOptions{
		Store: store,
	}
	if sm.newRandom != nil {
		engineOpts.Random = sm.newRandom()
	}

	ctx, cancel := context.WithCancel(sm.ctx)
	session := &Session{
		ID:        id,
		Slot:      slot,
		CreatedAt: time.Now(),
		engine:    game.NewEngine(engineOpts),
		ctx:       ctx,
		cancel:    cancel,
	}
	intro := session.engine.Intro()

	sm.sessionsLock.Lock()
	sm.sessions[id] = session
	sm.sessionsLock.Unlock()
	log.Info("Opened session %s on slot %s", id, slot)

	return session, intro, nil
}

// GetSession retrieves a session by its ID
func (sm *SessionManager) GetSession(id uuid.UUID) (*Session, error) {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	session, ok := sm.sessions[id]
	if !ok {
		return nil, &ErrSessionNotFound{SessionID: id}
	}
	return session, nil
}

// RemoveSession closes a session and frees its slot.
// The slot is only released after the session's last command has finished.
func (sm *SessionManager) RemoveSession(id uuid.UUID) error {
	sm.sessionsLock.Lock()
	session, ok := sm.sessions[id]
	if !ok {
		sm.sessionsLock.Unlock()
		return &ErrSessionNotFound{SessionID: id}
	}
	delete(sm.sessions, id)
	sm.sessionsLock.Unlock()

	session.close()

	sm.sessionsLock.Lock()
	if sm.slots[session.Slot] == id {
		delete(sm.slots, session.Slot)
	}
	sm.sessionsLock.Unlock()
	log.Info("Closed session %s on slot %s", id, session.Slot)
	return nil
}

// Count returns the number of open sessions
func (sm *SessionManager) Count() int {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	return len(sm.sessions)
}

type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session %s not found", e.SessionID)
}

func IsSessionNotFound(err error) bool {
	_, ok := err.(*ErrSessionNotFound)
	return ok
}

type ErrSessionClosed struct {
	SessionID uuid.UUID
}

func (e *ErrSessionClosed) Error() string {
	return fmt.Sprintf("session %s is closed", e.SessionID)
}

func IsSessionClosed(err error) bool {
	_, ok := err.(*ErrSessionClosed)
	return ok
}

type ErrSlotInUse struct {
	Slot      string
	SessionID uuid.UUID
}

func (e *ErrSlotInUse) Error() string {
	return fmt.Sprintf("slot %s is in use by session %s", e.Slot, e.SessionID)
}

func IsSlotInUse(err error) bool {
	_, ok := err.(*ErrSlotInUse)
	return ok
}
