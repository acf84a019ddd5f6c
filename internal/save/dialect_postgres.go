package save

import "fmt"

// PostgresDialect implements Dialect for PostgreSQL databases.
type PostgresDialect struct{}

// DriverName returns "postgres" for the lib/pq driver.
func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// Placeholder returns "$N" for the given position (PostgreSQL uses numbered placeholders).
func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

// InitStatements returns no statements; PostgreSQL needs no session setup
// for the save store.
func (d *PostgresDialect) InitStatements() []string {
	return nil
}

// UpsertSlot uses ON CONFLICT on the slot primary key.
func (d *PostgresDialect) UpsertSlot() string {
	return `INSERT INTO world_saves (slot, seed, width, height, data, saved_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET
			seed = EXCLUDED.seed,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			data = EXCLUDED.data,
			saved_at = EXCLUDED.saved_at`
}
