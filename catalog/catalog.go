// Package catalog persists extraction snapshots in a SQLite database so
// field sets from different model revisions can be compared later.
package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"cbn/notes"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id      TEXT PRIMARY KEY,
	source  TEXT NOT NULL,
	taken   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS fields (
	snapshot_id  TEXT NOT NULL REFERENCES snapshots(id),
	element_id   TEXT NOT NULL,
	element_kind TEXT NOT NULL,
	key          TEXT NOT NULL,
	value        TEXT NOT NULL,
	ord          INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS fields_by_snapshot ON fields(snapshot_id, element_id, ord);
`

// ElementFields is one element's extracted field set.
type ElementFields struct {
	ID     string
	Kind   string
	Fields *notes.FieldMap
}

// Snapshot describes one stored extraction run.
type Snapshot struct {
	ID     string
	Source string
	Taken  time.Time
}

// Catalog wraps a single SQLite connection. Not safe for concurrent use.
type Catalog struct {
	conn *sqlite.Conn
}

// Open creates or opens the catalog database at path.
func Open(path string) (*Catalog, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("unable to open catalog database: %w", err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to initialize catalog schema: %w", err)
	}
	return &Catalog{conn: conn}, nil
}

func (c *Catalog) Close() error {
	return c.conn.Close()
}

// StoreSnapshot records the field sets of a single extraction run and
// returns the snapshot id. Field order within each element is preserved.
func (c *Catalog) StoreSnapshot(source string, elements []ElementFields) (id string, err error) {
	defer sqlitex.Save(c.conn)(&err)

	id = uuid.NewString()
	err = sqlitex.Execute(c.conn, `INSERT INTO snapshots (id, source, taken) VALUES (?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{id, source, time.Now().UTC().Format(time.RFC3339)}})
	if err != nil {
		return "", fmt.Errorf("unable to store snapshot: %w", err)
	}

	for _, el := range elements {
		ord := 0
		var insertErr error
		el.Fields.Each(func(key, value string) {
			if insertErr != nil {
				return
			}
			insertErr = sqlitex.Execute(c.conn,
				`INSERT INTO fields (snapshot_id, element_id, element_kind, key, value, ord) VALUES (?, ?, ?, ?, ?, ?)`,
				&sqlitex.ExecOptions{Args: []any{id, el.ID, el.Kind, key, value, ord}})
			ord++
		})
		if insertErr != nil {
			return "", fmt.Errorf("unable to store fields of %q: %w", el.ID, insertErr)
		}
	}
	return id, nil
}

// ReadSnapshot loads all field sets of a snapshot, elements ordered by id,
// fields in their stored order.
func (c *Catalog) ReadSnapshot(id string) ([]ElementFields, error) {
	var (
		elements []ElementFields
		current  *ElementFields
	)
	err := sqlitex.Execute(c.conn,
		`SELECT element_id, element_kind, key, value FROM fields WHERE snapshot_id = ? ORDER BY element_id, ord`,
		&sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				elID, kind := stmt.ColumnText(0), stmt.ColumnText(1)
				if current == nil || current.ID != elID {
					elements = append(elements, ElementFields{ID: elID, Kind: kind, Fields: notes.NewFieldMap()})
					current = &elements[len(elements)-1]
				}
				current.Fields.Set(stmt.ColumnText(2), stmt.ColumnText(3))
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot %q: %w", id, err)
	}
	return elements, nil
}

// Snapshots lists stored snapshots, newest first.
func (c *Catalog) Snapshots() ([]Snapshot, error) {
	var snaps []Snapshot
	err := sqlitex.Execute(c.conn, `SELECT id, source, taken FROM snapshots ORDER BY taken DESC`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				taken, err := time.Parse(time.RFC3339, stmt.ColumnText(2))
				if err != nil {
					return fmt.Errorf("malformed timestamp in catalog: %w", err)
				}
				snaps = append(snaps, Snapshot{ID: stmt.ColumnText(0), Source: stmt.ColumnText(1), Taken: taken})
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to list snapshots: %w", err)
	}
	return snaps, nil
}
