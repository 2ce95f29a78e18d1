package repositories

import (
	"context"
	"sync"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// MemoryRepository keeps encoded save documents in a map.
type MemoryRepository struct {
	saves map[string][]byte
	lock  sync.RWMutex
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		saves: make(map[string][]byte),
	}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error) {
	r.lock.RLock()
	data, ok := r.saves[slot]
	r.lock.RUnlock()
	if !ok {
		return nil, &ErrNotFound{}
	}
	return decodeStored(slot, data)
}

func (r *MemoryRepository) SaveSave(ctx context.Context, slot string, record *types.SaveRecord) error {
	data, err := types.EncodeSaveRecord(*record)
	if err != nil {
		return err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.saves[slot] = data
	return nil
}

func (r *MemoryRepository) DeleteSave(ctx context.Context, slot string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.saves, slot)
	return nil
}

// PutRaw stores a raw document for a slot, bypassing encoding.
func (r *MemoryRepository) PutRaw(slot string, data []byte) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.saves[slot] = append([]byte(nil), data...)
}
