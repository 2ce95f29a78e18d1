package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	migrations, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error) {
	q := `
	SELECT data FROM saves WHERE slot = ?;
	`
	var data string
	if err := r.db.QueryRowContext(ctx, q, slot).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}

	return decodeStored(slot, []byte(data))
}

func (r *SQLiteRepository) SaveSave(ctx context.Context, slot string, record *types.SaveRecord) error {
	data, err := types.EncodeSaveRecord(*record)
	if err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO saves (slot, data, updated_at)
	VALUES (?, ?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, slot, string(data), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) DeleteSave(ctx context.Context, slot string) error {
	q := `
	DELETE FROM saves WHERE slot = ?;
	`
	if _, err := r.db.ExecContext(ctx, q, slot); err != nil {
		return fmt.Errorf("failed to delete save: %v", err)
	}

	return nil
}
