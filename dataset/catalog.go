package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS instances (
	name       TEXT PRIMARY KEY,
	threshold  INTEGER NOT NULL,
	shape      TEXT NOT NULL,
	npoints    INTEGER NOT NULL,
	traps      INTEGER NOT NULL,
	path       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS instances_threshold ON instances (threshold, shape);
`

// createdLayout has a fixed width so that created_at sorts lexically.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one catalogued artifact. Shape is canonical.
type Entry struct {
	Name      string
	Threshold int
	Shape     []int
	NPoints   int
	Traps     int // occupied cells of the solution
	Path      string
	CreatedAt time.Time
}

// Catalog is a SQLite index over persisted artifacts. Safe for concurrent use.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens (creating if needed) the catalog database at path.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open catalog %s: %w", path, err)
	}
	// Single connection: generator workers write through one handle.
	db.SetMaxOpenConns(1)
	if _, err = db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: open catalog %s: %w", path, err)
	}
	if _, err = db.Exec(catalogSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: init catalog %s: %w", path, err)
	}

	return &Catalog{db: db}, nil
}

// Record inserts e. A zero CreatedAt is set to the current time.
func (c *Catalog) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO instances (name, threshold, shape, npoints, traps, path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Threshold, ShapeKey(e.Shape), e.NPoints, e.Traps, e.Path,
		e.CreatedAt.UTC().Format(createdLayout),
	)
	if err != nil {
		return fmt.Errorf("dataset: record %s: %w", e.Name, err)
	}

	return nil
}

// Entries lists the artifacts recorded for threshold, oldest first.
func (c *Catalog) Entries(ctx context.Context, threshold int) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name, threshold, shape, npoints, traps, path, created_at
		 FROM instances WHERE threshold = ? ORDER BY created_at, name`, threshold)
	if err != nil {
		return nil, fmt.Errorf("dataset: list threshold %d: %w", threshold, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e              Entry
			shape, created string
		)
		if err = rows.Scan(&e.Name, &e.Threshold, &shape, &e.NPoints, &e.Traps, &e.Path, &created); err != nil {
			return nil, fmt.Errorf("dataset: list threshold %d: %w", threshold, err)
		}
		if e.Shape, err = ParseShape(shape); err != nil {
			return nil, fmt.Errorf("%w: catalog row %s: %v", ErrCorruptArtifact, e.Name, err)
		}
		if e.CreatedAt, err = time.Parse(createdLayout, created); err != nil {
			return nil, fmt.Errorf("%w: catalog row %s: %v", ErrCorruptArtifact, e.Name, err)
		}
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: list threshold %d: %w", threshold, err)
	}

	return out, nil
}

// Close releases the database.
func (c *Catalog) Close() error { return c.db.Close() }
