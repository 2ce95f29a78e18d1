package sessions

import (
	"context"
	"testing"

	"github.com/cbodonnell/corebreaker/pkg/game"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/cbodonnell/corebreaker/pkg/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*SessionManager, *repositories.MemoryRepository) {
	repository := repositories.NewMemoryRepository()
	sm := NewSessionManager(context.Background(), NewSessionManagerOptions{
		Repository: repository,
		NewRandom: func() game.Random {
			return game.NewRandom(1)
		},
	})
	return sm, repository
}

func TestCreateSession(t *testing.T) {
	sm, _ := newTestManager(t)

	session, intro, err := sm.CreateSession("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSlot, session.Slot)
	assert.NotEqual(t, uuid.Nil, session.ID)
	require.NotEmpty(t, intro)
	assert.Contains(t, intro[0].Text, "Welcome!")
	assert.Equal(t, 1, sm.Count())

	got, err := sm.GetSession(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestCreateSession_LoadsStoredRecord(t *testing.T) {
	sm, repository := newTestManager(t)
	record := types.DefaultSaveRecord()
	record.Coins = 999
	require.NoError(t, repository.SaveSave(context.Background(), "alice", &record))

	session, _, err := sm.CreateSession("alice")
	require.NoError(t, err)
	assert.Equal(t, 999, session.Snapshot().Save.Coins)
}

func TestCreateSession_Rejects(t *testing.T) {
	sm, _ := newTestManager(t)
	first, _, err := sm.CreateSession("alice")
	require.NoError(t, err)

	_, _, err = sm.CreateSession("alice")
	require.Error(t, err)
	assert.True(t, IsSlotInUse(err))

	_, _, err = sm.CreateSession("../etc")
	require.Error(t, err)
	assert.False(t, IsSlotInUse(err))

	require.NoError(t, sm.RemoveSession(first.ID))
	_, _, err = sm.CreateSession("alice")
	assert.NoError(t, err)
}

func TestRemoveSession(t *testing.T) {
	sm, _ := newTestManager(t)
	session, _, err := sm.CreateSession("bob")
	require.NoError(t, err)

	require.NoError(t, sm.RemoveSession(session.ID))
	assert.Equal(t, 0, sm.Count())

	_, err = sm.GetSession(session.ID)
	assert.True(t, IsSessionNotFound(err))
	assert.True(t, IsSessionNotFound(sm.RemoveSession(session.ID)))
}

func TestSession_HandleInput(t *testing.T) {
	sm, repository := newTestManager(t)
	session, _, err := sm.CreateSession("carol")
	require.NoError(t, err)

	resp, err := session.HandleInput("garage")
	require.NoError(t, err)
	assert.Equal(t, session.ID.String(), resp.SessionID)
	assert.Equal(t, types.PhaseGarage, resp.Phase)
	assert.NotEmpty(t, resp.Entries)

	resp, err = session.HandleInput("1")
	require.NoError(t, err)
	assert.Equal(t, types.PhaseGarage, resp.Phase)

	stored, err := repository.LoadSave(context.Background(), "carol")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Equipment.GloveLv)
	assert.Equal(t, 50, stored.Coins)

	resp, err = session.HandleInput("   ")
	require.NoError(t, err)
	assert.NotNil(t, resp.Entries)
	assert.Empty(t, resp.Entries)

	resp, err = session.HandleInput("help")
	require.NoError(t, err)
	assert.True(t, resp.OpenHelp)
}

func TestSession_SnapshotRun(t *testing.T) {
	sm, _ := newTestManager(t)
	session, _, err := sm.CreateSession("")
	require.NoError(t, err)

	assert.Nil(t, session.Snapshot().Run)

	_, err = session.HandleInput("start")
	require.NoError(t, err)
	snapshot := session.Snapshot()
	assert.Equal(t, types.PhaseRun, snapshot.Phase)
	require.NotNil(t, snapshot.Run)
	assert.Equal(t, 40.0, snapshot.Run.TimeLeft)
}

func TestRemoveSession_ClosesSession(t *testing.T) {
	sm, repository := newTestManager(t)
	old, _, err := sm.CreateSession("eve")
	require.NoError(t, err)
	_, err = old.HandleInput("garage")
	require.NoError(t, err)

	require.NoError(t, sm.RemoveSession(old.ID))
	assert.Error(t, old.Context().Err())

	replacement, _, err := sm.CreateSession("eve")
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, replacement.ID)

	_, err = old.HandleInput("upgrade glove")
	require.Error(t, err)
	assert.True(t, IsSessionClosed(err))

	_, err = repository.LoadSave(context.Background(), "eve")
	assert.True(t, repositories.IsNotFound(err))
	assert.Equal(t, types.DefaultSaveRecord().Coins, replacement.Snapshot().Save.Coins)
}

// blockingRepository holds every load until release is closed.
type blockingRepository struct {
	*repositories.MemoryRepository
	loading chan struct{}
	release chan struct{}
}

func (r *blockingRepository) LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error) {
	close(r.loading)
	<-r.release
	return r.MemoryRepository.LoadSave(ctx, slot)
}

func TestCreateSession_LoadDoesNotBlockOtherSessions(t *testing.T) {
	memory := repositories.NewMemoryRepository()
	sm := NewSessionManager(context.Background(), NewSessionManagerOptions{Repository: memory})
	first, _, err := sm.CreateSession("first")
	require.NoError(t, err)

	blocking := &blockingRepository{
		MemoryRepository: memory,
		loading:          make(chan struct{}),
		release:          make(chan struct{}),
	}
	sm.repository = blocking

	done := make(chan error, 1)
	go func() {
		_, _, err := sm.CreateSession("slow")
		done <- err
	}()
	<-blocking.loading

	got, err := sm.GetSession(first.ID)
	require.NoError(t, err)
	_, err = got.HandleInput("garage")
	require.NoError(t, err)

	// the slot is already reserved while its record loads
	_, _, err = sm.CreateSession("slow")
	assert.True(t, IsSlotInUse(err))

	close(blocking.release)
	require.NoError(t, <-done)
	assert.Equal(t, 2, sm.Count())
}
