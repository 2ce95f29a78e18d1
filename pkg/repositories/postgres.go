package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
	// a single pgx.Conn must not be used concurrently
	lock sync.Mutex
}

// NewPostgresRepository connects to the database and applies the embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	migrations, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT data::text FROM saves WHERE slot = $1;
	`
	var data string
	if err := r.conn.QueryRow(ctx, q, slot).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}

	return decodeStored(slot, []byte(data))
}

func (r *PostgresRepository) SaveSave(ctx context.Context, slot string, record *types.SaveRecord) error {
	data, err := types.EncodeSaveRecord(*record)
	if err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO saves (slot, data, updated_at) VALUES ($1, $2::jsonb, $3)
	ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.conn.Exec(ctx, q, slot, string(data), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteSave(ctx context.Context, slot string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, err := r.conn.Exec(ctx, "DELETE FROM saves WHERE slot = $1;", slot); err != nil {
		return fmt.Errorf("failed to delete save: %v", err)
	}

	return nil
}
