package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/cbodonnell/corebreaker/pkg/game/types"
)

// Repository stores save records by slot name.
type Repository interface {
	Close(ctx context.Context) error
	// LoadSave returns ErrNotFound if the slot was never written and
	// ErrMalformed if the stored document cannot be decoded.
	LoadSave(ctx context.Context, slot string) (*types.SaveRecord, error)
	SaveSave(ctx context.Context, slot string, record *types.SaveRecord) error
	DeleteSave(ctx context.Context, slot string) error
}

//go:embed migrations
var migrationsFS embed.FS

var slotRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateSlot checks that a slot name is safe to use as a key and a file name.
func ValidateSlot(slot string) error {
	if !slotRegex.MatchString(slot) {
		return fmt.Errorf("invalid save slot %q: must be 1-64 letters, digits, '-' or '_'", slot)
	}
	return nil
}

// NewRepositoryFromURL opens the repository selected by the URL scheme:
// sqlite://<path>, postgres(ql)://..., file://<dir> or memory://.
func NewRepositoryFromURL(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		return NewSQLiteRepository(ctx, u.Host+u.Path)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String())
	case "file":
		return NewFileRepository(u.Host + u.Path)
	case "memory":
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// readMigrations returns the sorted .sql files under migrations/<dialect>.
func readMigrations(dialect string) ([]string, error) {
	root := "migrations/" + dialect
	entries, err := fs.ReadDir(migrationsFS, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	migrations := make([]string, 0, len(names))
	for _, name := range names {
		b, err := fs.ReadFile(migrationsFS, root+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", name, err)
		}
		migrations = append(migrations, string(b))
	}
	return migrations, nil
}

func decodeStored(slot string, data []byte) (*types.SaveRecord, error) {
	record, err := types.DecodeSaveRecord(data)
	if err != nil {
		return nil, &ErrMalformed{Slot: slot, Err: err}
	}
	return &record, nil
}
