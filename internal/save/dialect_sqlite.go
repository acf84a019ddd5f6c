package save

// SQLiteDialect implements Dialect for SQLite databases.
type SQLiteDialect struct{}

// DriverName returns "sqlite" for the modernc.org/sqlite driver.
func (d *SQLiteDialect) DriverName() string {
	return "sqlite"
}

// Placeholder returns "?" for all positions (SQLite uses positional ? placeholders).
func (d *SQLiteDialect) Placeholder(position int) string {
	return "?"
}

// InitStatements returns SQLite PRAGMA statements for optimal operation.
func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

// UpsertSlot uses INSERT OR REPLACE, which SQLite resolves on the slot
// primary key.
func (d *SQLiteDialect) UpsertSlot() string {
	return `INSERT OR REPLACE INTO world_saves (slot, seed, width, height, data, saved_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`
}
