package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/klauspost/compress/zstd"
)

const saveFileExt = ".json.zst"

// FileRepository keeps one zstd compressed JSON document per slot in a directory.
type FileRepository struct {
	dir  string
	lock sync.Mutex
}

// NewFileRepository creates dir if needed and returns a repository rooted at it.
func NewFileRepository(dir string) (Repository, error) {
	if dir == "" {
		return nil, fmt.Errorf("save directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %v", err)
	}
	return &FileRepository{
		dir: dir,
	}, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) path(slot string) (string, error) {
	if err := ValidateSlot(slot); err != nil {
		return "", err
	}
	return filepath.Join(r.dir, slot+saveFileExt), nil
}

func (r *FileRepository) LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error) {
	path, err := r.path(slot)
	if err != nil {
		return nil, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	compressed, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read save file: %v", err)
	}

	compReader, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	data, err := compReader.DecodeAll(compressed, nil)
	if err != nil {
		return nil, &ErrMalformed{Slot: slot, Err: fmt.Errorf("failed to decompress save file: %v", err)}
	}

	return decodeStored(slot, data)
}

func (r *FileRepository) SaveSave(ctx context.Context, slot string, record *types.SaveRecord) error {
	path, err := r.path(slot)
	if err != nil {
		return err
	}

	data, err := types.EncodeSaveRecord(*record)
	if err != nil {
		return err
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(data); err != nil {
		return fmt.Errorf("failed to compress save: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %v", err)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	// write to a temp file and rename so a crash never leaves a torn save
	tmp, err := os.CreateTemp(r.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(compressed.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %v", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace save file: %v", err)
	}

	return nil
}

func (r *FileRepository) DeleteSave(ctx context.Context, slot string) error {
	path, err := r.path(slot)
	if err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %v", err)
	}
	return nil
}
