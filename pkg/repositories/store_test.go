package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRepository fails every call.
type brokenRepository struct {
	saves int
}

func (r *brokenRepository) Close(ctx context.Context) error { return nil }

func (r *brokenRepository) LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error) {
	return nil, errors.New("disk on fire")
}

func (r *brokenRepository) SaveSave(ctx context.Context, slot string, record *types.SaveRecord) error {
	r.saves++
	return errors.New("disk on fire")
}

func (r *brokenRepository) DeleteSave(ctx context.Context, slot string) error {
	return errors.New("disk on fire")
}

func TestSaveStore_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	store := NewSaveStore(context.Background(), NewSaveStoreOptions{Repository: repo, Slot: "default"})

	assert.True(t, store.Load().Equal(types.DefaultSaveRecord()))

	record := *progressedRecord()
	store.Save(record)
	assert.True(t, store.Load().Equal(record))

	other := NewSaveStore(context.Background(), NewSaveStoreOptions{Repository: repo, Slot: "other"})
	assert.True(t, other.Load().Equal(types.DefaultSaveRecord()))
}

func TestSaveStore_MalformedLoadsDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	repo.PutRaw("default", []byte(`["not", "a", "save"]`))
	store := NewSaveStore(context.Background(), NewSaveStoreOptions{Repository: repo, Slot: "default"})

	assert.True(t, store.Load().Equal(types.DefaultSaveRecord()))
}

func TestSaveStore_PartialRecordMergesDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	repo.PutRaw("default", []byte(`{"coins": 990, "equipment": {"droneLv": 4}}`))
	store := NewSaveStore(context.Background(), NewSaveStoreOptions{Repository: repo, Slot: "default"})

	got := store.Load()
	assert.Equal(t, 990, got.Coins)
	assert.Equal(t, 5, got.Parts)
	assert.Equal(t, types.Equipment{GloveLv: 1, HammerLv: 1, DroneLv: 4}, got.Equipment)
}

func TestSaveStore_Reset(t *testing.T) {
	repo := NewMemoryRepository()
	store := NewSaveStore(context.Background(), NewSaveStoreOptions{Repository: repo, Slot: "default"})
	store.Save(*progressedRecord())

	got := store.Reset()
	assert.True(t, got.Equal(types.DefaultSaveRecord()))

	stored, err := repo.LoadSave(context.Background(), "default")
	require.NoError(t, err)
	assert.True(t, stored.Equal(types.DefaultSaveRecord()))
}

func TestSaveStore_SwallowsErrors(t *testing.T) {
	repo := &brokenRepository{}
	store := NewSaveStore(context.Background(), NewSaveStoreOptions{Repository: repo, Slot: "default"})

	assert.True(t, store.Load().Equal(types.DefaultSaveRecord()))
	assert.NotPanics(t, func() { store.Save(*progressedRecord()) })
	assert.True(t, store.Reset().Equal(types.DefaultSaveRecord()))
	assert.Equal(t, 2, repo.saves)
}
