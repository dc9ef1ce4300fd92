// Package storage provides SQLite-based persistence for levels and worlds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tsc-editor/internal/objects"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

var (
	// ErrNotFound is returned when a level or world does not exist.
	ErrNotFound = errors.New("storage: not found")
	// ErrExists is returned by Create for a name already in use.
	ErrExists = errors.New("storage: already exists")
	// ErrBadName is returned for empty names and unknown kinds.
	ErrBadName = errors.New("storage: invalid name")
)

// Kind selects the table a document lives in.
type Kind string

const (
	KindLevel Kind = "level"
	KindWorld Kind = "world"
)

func (k Kind) table() (string, error) {
	switch k {
	case KindLevel:
		return "levels", nil
	case KindWorld:
		return "worlds", nil
	}
	return "", fmt.Errorf("%w: kind %q", ErrBadName, string(k))
}

// Store manages the SQLite database connection for level and world
// persistence.
type Store struct {
	db *sql.DB
}

// Record describes one stored level or world.
type Record struct {
	Kind      Kind
	Name      string
	Objects   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// A single connection keeps transactions and foreign keys on one handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			name TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS worlds (
			name TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS objects (
			owner_kind TEXT NOT NULL,
			owner TEXT NOT NULL,
			idx INTEGER NOT NULL,
			type TEXT NOT NULL,
			props TEXT NOT NULL,
			PRIMARY KEY (owner_kind, owner, idx)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Exists reports whether a document called name is stored.
func (s *Store) Exists(kind Kind, name string) (bool, error) {
	table, err := kind.table()
	if err != nil {
		return false, err
	}

	var n int
	err = s.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query %s: %w", table, err)
	}
	return n > 0, nil
}

// Create stores an empty document. It fails with ErrExists if name is
// taken.
func (s *Store) Create(kind Kind, name string) error {
	table, err := kind.table()
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: empty %s name", ErrBadName, kind)
	}

	exists, err := s.Exists(kind, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s %q", ErrExists, kind, name)
	}

	if _, err := s.db.Exec("INSERT INTO "+table+" (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("storage: cannot create %s: %w", kind, err)
	}
	return nil
}

// Save replaces the objects of a document, creating it if needed. Object
// order is kept.
func (s *Store) Save(kind Kind, name string, objs []*scene.Sprite) error {
	table, err := kind.table()
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: empty %s name", ErrBadName, kind)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO `+table+` (name) VALUES (?)
		 ON CONFLICT(name) DO UPDATE SET updated_at = CURRENT_TIMESTAMP`,
		name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", kind, err)
	}

	if _, err := tx.Exec("DELETE FROM objects WHERE owner_kind = ? AND owner = ?", string(kind), name); err != nil {
		return fmt.Errorf("storage: cannot clear objects: %w", err)
	}

	for i, obj := range objs {
		props, err := yaml.Marshal(obj.Attributes())
		if err != nil {
			return fmt.Errorf("storage: cannot encode object %d: %w", i, err)
		}
		_, err = tx.Exec(
			"INSERT INTO objects (owner_kind, owner, idx, type, props) VALUES (?, ?, ?, ?, ?)",
			string(kind), name, i, string(obj.Type), string(props),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save object %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Load rebuilds the objects of a document in saved order.
func (s *Store) Load(kind Kind, name string) ([]*scene.Sprite, error) {
	exists, err := s.Exists(kind, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}

	rows, err := s.db.Query(
		`SELECT type, props
		 FROM objects
		 WHERE owner_kind = ? AND owner = ?
		 ORDER BY idx`,
		string(kind), name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query objects: %w", err)
	}
	defer rows.Close()

	var objs []*scene.Sprite
	for rows.Next() {
		var typ, props string
		if err := rows.Scan(&typ, &props); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		attrs := map[string]string{}
		if err := yaml.Unmarshal([]byte(props), &attrs); err != nil {
			return nil, fmt.Errorf("storage: cannot decode %s object: %w", typ, err)
		}
		obj, err := objects.Build(typ, attrs)
		if err != nil {
			return nil, fmt.Errorf("storage: %s %q: %w", kind, name, err)
		}
		objs = append(objs, obj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return objs, nil
}

// Delete removes a document with all its objects.
func (s *Store) Delete(kind Kind, name string) error {
	table, err := kind.table()
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM "+table+" WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", kind, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}
	if _, err := tx.Exec("DELETE FROM objects WHERE owner_kind = ? AND owner = ?", string(kind), name); err != nil {
		return fmt.Errorf("storage: cannot delete objects: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// List returns the stored documents of a kind, sorted by name.
func (s *Store) List(kind Kind) ([]Record, error) {
	table, err := kind.table()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT t.name, t.created_at, t.updated_at,
		        (SELECT COUNT(*) FROM objects o WHERE o.owner_kind = ? AND o.owner = t.name)
		 FROM `+table+` t
		 ORDER BY t.name`,
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", table, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r := Record{Kind: kind}
		var createdAt, updatedAt any
		if err := rows.Scan(&r.Name, &createdAt, &updatedAt, &r.Objects); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		r.UpdatedAt = parseTime(updatedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Collection binds a Store to one kind, the shape the level and world
// editors persist through.
type Collection struct {
	store *Store
	kind  Kind
}

// Levels returns the level collection.
func (s *Store) Levels() *Collection { return &Collection{store: s, kind: KindLevel} }

// Worlds returns the world collection.
func (s *Store) Worlds() *Collection { return &Collection{store: s, kind: KindWorld} }

func (c *Collection) Kind() Kind                                   { return c.kind }
func (c *Collection) Exists(name string) (bool, error)             { return c.store.Exists(c.kind, name) }
func (c *Collection) Create(name string) error                     { return c.store.Create(c.kind, name) }
func (c *Collection) Save(name string, objs []*scene.Sprite) error { return c.store.Save(c.kind, name, objs) }
func (c *Collection) Load(name string) ([]*scene.Sprite, error)    { return c.store.Load(c.kind, name) }
func (c *Collection) Delete(name string) error                     { return c.store.Delete(c.kind, name) }
func (c *Collection) List() ([]Record, error)                      { return c.store.List(c.kind) }
