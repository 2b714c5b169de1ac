// Package db reads VariantBreak dataset exports out of sqlite. This is the
// table-ingestion boundary: the export schema, the column kinds and the
// cell sentinels (numeric 0.0 = SV not detected, text "1" = row overlapped
// an excluded filter region, hover columns named "Hover_" + sample) are the
// versioned external contract between the preprocessing step and this
// viewer.
//
// Schema, version 1:
//
//	metadata(key TEXT PRIMARY KEY, value TEXT)
//	    keys: "schema_version", "sample_names" (JSON array, display order)
//	columns(position INTEGER PRIMARY KEY, name TEXT, kind TEXT)
//	    kind: "annotation" | "sample" | "hover" | "filter"
//	variants(idx INTEGER PRIMARY KEY, <one wide column per columns row>)
//	    sample columns REAL (class codes), all other columns TEXT
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cytham/variantmap/pkg/model"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the export schema this viewer understands.
const SchemaVersion = "1"

// Column kinds of the export schema.
const (
	KindAnnotation = "annotation"
	KindSample     = "sample"
	KindHover      = "hover"
	KindFilter     = "filter"
)

// Column describes one wide column of the variants table.
type Column struct {
	Name string
	Kind string
}

// Store wraps the dataset database handle.
type Store struct {
	db *sql.DB
}

// Open opens a dataset export at the given path.
func Open(path string) (*Store, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	return NewStore(sqldb), nil
}

// NewStore wraps an already-open handle, mainly for tests.
func NewStore(sqldb *sql.DB) *Store {
	return &Store{db: sqldb}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Verify checks that the export carries the schema version this viewer
// understands.
func (s *Store) Verify(ctx context.Context) error {
	version, err := s.metadataValue(ctx, "schema_version")
	if err != nil {
		return err
	}
	if version != SchemaVersion {
		return fmt.Errorf("dataset schema version %q, viewer understands %q", version, SchemaVersion)
	}
	return nil
}

func (s *Store) metadataValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("metadata %q: %w", key, err)
	}
	return value, nil
}

// Samples returns the canonical ordered sample IDs of the dataset.
func (s *Store) Samples(ctx context.Context) ([]string, error) {
	raw, err := s.metadataValue(ctx, "sample_names")
	if err != nil {
		return nil, err
	}
	var samples []string
	if err := json.Unmarshal([]byte(raw), &samples); err != nil {
		return nil, fmt.Errorf("metadata sample_names: %w", err)
	}
	return samples, nil
}

// Columns returns the wide-column registry in dataset order.
func (s *Store) Columns(ctx context.Context) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, kind FROM columns ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("column registry: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.Kind); err != nil {
			return nil, fmt.Errorf("scan column registry: %w", err)
		}
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("column registry: %w", err)
	}
	return cols, nil
}

// quoteIdent quotes a wide-column name for SQL. Column names come from the
// export's own registry, but sample IDs are caller data upstream, so quote
// anyway.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// LoadTable reads the whole export into a VariantTable.
func (s *Store) LoadTable(ctx context.Context) (*model.VariantTable, error) {
	samples, err := s.Samples(ctx)
	if err != nil {
		return nil, err
	}
	cols, err := s.Columns(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(cols)+1)
	selected = append(selected, "idx")
	for _, col := range cols {
		selected = append(selected, quoteIdent(col.Name))
	}
	query := `SELECT ` + strings.Join(selected, ", ") + ` FROM variants ORDER BY idx`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load variants: %w", err)
	}
	defer rows.Close()

	var index []int
	numeric := make(map[string][]float64)
	text := make(map[string][]string)

	for rows.Next() {
		var idx int
		dest := make([]interface{}, 0, len(cols)+1)
		dest = append(dest, &idx)
		numCells := make([]sql.NullFloat64, len(cols))
		textCells := make([]sql.NullString, len(cols))
		for i, col := range cols {
			if col.Kind == KindSample {
				dest = append(dest, &numCells[i])
			} else {
				dest = append(dest, &textCells[i])
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan variant row: %w", err)
		}

		index = append(index, idx)
		for i, col := range cols {
			if col.Kind == KindSample {
				numeric[col.Name] = append(numeric[col.Name], numCells[i].Float64)
			} else {
				text[col.Name] = append(text[col.Name], textCells[i].String)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load variants: %w", err)
	}

	table := model.NewVariantTable(model.Metadata{SampleNames: samples}, index)
	for _, col := range cols {
		if col.Kind == KindSample {
			err = table.AddNumeric(col.Name, numeric[col.Name])
		} else {
			err = table.AddText(col.Name, text[col.Name])
		}
		if err != nil {
			return nil, fmt.Errorf("assemble table: %w", err)
		}
	}
	return table, nil
}
