package save

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/lawnchairsociety/wildlands/internal/worlddata"
)

// Config holds save store connection configuration.
type Config struct {
	// Driver specifies which database to use: "sqlite" or "postgres"
	Driver string

	// SQLitePath is the database file path for the sqlite driver.
	SQLitePath string

	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string
}

// DefaultConfig returns a Config with sensible defaults for SQLite.
func DefaultConfig(sqlitePath string) Config {
	return Config{
		Driver:     "sqlite",
		SQLitePath: sqlitePath,
	}
}

// Slot describes one stored world without loading its payload.
type Slot struct {
	Name    string
	Seed    int64
	Width   int
	Height  int
	SavedAt time.Time
}

// Store keeps world snapshots in a SQL database, one row per named slot.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open opens or creates the save store described by cfg.
func Open(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	dsn := cfg.PostgresDSN
	if dialect.DriverName() == "sqlite" {
		dsn = cfg.SQLitePath
		if dir := filepath.Dir(dsn); dir != "" && dsn != ":memory:" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create save directory: %w", err)
			}
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open save store: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init statement failed: %w", err)
		}
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the save schema if it doesn't exist.
func (s *Store) migrate() error {
	blob := "BLOB"
	if s.dialect.DriverName() == "postgres" {
		blob = "BYTEA"
	}
	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS world_saves (
		slot TEXT PRIMARY KEY,
		seed BIGINT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		data %s NOT NULL,
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`, blob)

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Save writes a world into the named slot, replacing any previous save.
func (s *Store) Save(slot string, world *worlddata.WorldData) error {
	var buf bytes.Buffer
	if err := Encode(&buf, world); err != nil {
		return err
	}

	_, err := s.db.Exec(s.dialect.UpsertSlot(),
		slot, world.Header.Seed, world.Header.Width, world.Header.Height, buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads the world stored in the named slot.
func (s *Store) Load(slot string) (*worlddata.WorldData, error) {
	query := fmt.Sprintf("SELECT data FROM world_saves WHERE slot = %s",
		s.dialect.Placeholder(1))

	var data []byte
	err := s.db.QueryRow(query, slot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no save in slot %q", slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}
	return Decode(bytes.NewReader(data))
}

// List returns the stored slots, newest first.
func (s *Store) List() ([]Slot, error) {
	rows, err := s.db.Query(
		"SELECT slot, seed, width, height, saved_at FROM world_saves ORDER BY saved_at DESC, slot")
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.Name, &sl.Seed, &sl.Width, &sl.Height, &sl.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan save row: %w", err)
		}
		slots = append(slots, sl)
	}
	return slots, rows.Err()
}

// Delete removes the named slot. Deleting a missing slot is not an error.
func (s *Store) Delete(slot string) error {
	query := fmt.Sprintf("DELETE FROM world_saves WHERE slot = %s",
		s.dialect.Placeholder(1))
	if _, err := s.db.Exec(query, slot); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", slot, err)
	}
	return nil
}
