package repositories

import (
	"context"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/cbodonnell/corebreaker/pkg/log"
)

// DefaultStoreTimeout bounds every repository call made by a SaveStore.
const DefaultStoreTimeout = 5 * time.Second

// SaveStore binds a Repository to one slot and never fails outward:
// errors are logged and a missing or malformed record loads as defaults.
type SaveStore struct {
	ctx        context.Context
	repository Repository
	slot       string
	timeout    time.Duration
}

// NewSaveStoreOptions contains options for creating a new SaveStore.
type NewSaveStoreOptions struct {
	Repository Repository
	Slot       string
	// Timeout defaults to DefaultStoreTimeout
	Timeout time.Duration
}

func NewSaveStore(ctx context.Context, opts NewSaveStoreOptions) *SaveStore {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &SaveStore{
		ctx:        ctx,
		repository: opts.Repository,
		slot:       opts.Slot,
		timeout:    timeout,
	}
}

// Slot returns the slot the store reads and writes
func (s *SaveStore) Slot() string {
	return s.slot
}

func (s *SaveStore) Load() types.SaveRecord {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	record, err := s.repository.LoadSave(ctx, s.slot)
	if err != nil {
		if IsNotFound(err) {
			log.Debug("No save found for slot %s, starting fresh", s.slot)
		} else {
			log.Warn("Failed to load save for slot %s, starting fresh: %v", s.slot, err)
		}
		return types.DefaultSaveRecord()
	}
	return record.Clamp()
}

func (s *SaveStore) Save(record types.SaveRecord) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	if err := s.repository.SaveSave(ctx, s.slot, &record); err != nil {
		log.Error("Failed to save slot %s: %v", s.slot, err)
		return
	}
	log.Trace("Saved slot %s", s.slot)
}

func (s *SaveStore) Reset() types.SaveRecord {
	record := types.DefaultSaveRecord()
	s.Save(record)
	return record
}
