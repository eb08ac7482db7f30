package repository

import "fmt"

// Dialect selects the SQL flavor. The schema DDL and the upsert statement are
// written to the common subset of PostgreSQL and SQLite; only placeholder
// style differs.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// Placeholder renders the i-th (1-based) bind parameter.
func (d Dialect) Placeholder(i int) string {
	if d == SQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", i)
}
