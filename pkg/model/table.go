package model

// VariantTable is the in-memory form of a VariantBreak dataset export.
// Column-naming conventions and cell sentinels (class code 0.0 for "SV not
// detected", the string "1" for "overlapped an excluded region", hover
// columns named "Hover_" + sample) are part of the export contract and are
// documented once in pkg/db, the ingestion boundary.

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned when a filter or selection names a
	// column the table does not have.
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnKind is returned when a column exists but holds the wrong
	// kind of values for the requested operation.
	ErrColumnKind = errors.New("wrong column kind")

	// ErrNoSampleColumns is returned when sample-order resolution leaves
	// nothing to plot.
	ErrNoSampleColumns = errors.New("no matching sample columns")
)

// HoverPrefix joins a sample ID to its hover-text column name.
const HoverPrefix = "Hover_"

// Metadata carries the dataset attributes attached by VariantBreak.
type Metadata struct {
	SampleNames []string `json:"sample_names"`
}

// VariantTable holds SV entries as rows and named columns of two kinds:
// numeric per-sample class codes and text (annotations, hover strings,
// filter flags). Index keeps the original SV labels so that explicit
// index selections survive filtering. Tables are never mutated after
// construction; every filter derives a new one via Select.
type VariantTable struct {
	cols    []string
	numeric map[string][]float64
	text    map[string][]string
	index   []int
	meta    Metadata
}

// NewVariantTable returns an empty table over the given SV index labels.
func NewVariantTable(meta Metadata, index []int) *VariantTable {
	return &VariantTable{
		numeric: make(map[string][]float64),
		text:    make(map[string][]string),
		index:   index,
		meta:    meta,
	}
}

// AddNumeric appends a numeric column. Construction only.
func (t *VariantTable) AddNumeric(name string, values []float64) error {
	if err := t.checkAdd(name, len(values)); err != nil {
		return err
	}
	t.cols = append(t.cols, name)
	t.numeric[name] = values
	return nil
}

// AddText appends a text column. Construction only.
func (t *VariantTable) AddText(name string, values []string) error {
	if err := t.checkAdd(name, len(values)); err != nil {
		return err
	}
	t.cols = append(t.cols, name)
	t.text[name] = values
	return nil
}

func (t *VariantTable) checkAdd(name string, n int) error {
	if t.HasColumn(name) {
		return fmt.Errorf("column %q: already present", name)
	}
	if n != len(t.index) {
		return fmt.Errorf("column %q: %d values for %d rows", name, n, len(t.index))
	}
	return nil
}

// Len returns the number of SV rows.
func (t *VariantTable) Len() int {
	return len(t.index)
}

// Columns returns the column names in insertion order.
func (t *VariantTable) Columns() []string {
	return t.cols
}

// HasColumn reports whether the table has a column of either kind.
func (t *VariantTable) HasColumn(name string) bool {
	if _, ok := t.numeric[name]; ok {
		return true
	}
	_, ok := t.text[name]
	return ok
}

// Numeric returns a numeric column by name.
func (t *VariantTable) Numeric(name string) ([]float64, error) {
	if col, ok := t.numeric[name]; ok {
		return col, nil
	}
	if _, ok := t.text[name]; ok {
		return nil, fmt.Errorf("column %q: %w (text, numeric needed)", name, ErrColumnKind)
	}
	return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
}

// Text returns a text column by name.
func (t *VariantTable) Text(name string) ([]string, error) {
	if col, ok := t.text[name]; ok {
		return col, nil
	}
	if _, ok := t.numeric[name]; ok {
		return nil, fmt.Errorf("column %q: %w (numeric, text needed)", name, ErrColumnKind)
	}
	return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
}

// Index returns the SV labels of the rows, in row order.
func (t *VariantTable) Index() []int {
	return t.index
}

// Meta returns the dataset metadata.
func (t *VariantTable) Meta() Metadata {
	return t.meta
}

// Select derives a new table holding the given row positions, in the given
// order. The source table is left untouched.
func (t *VariantTable) Select(rows []int) *VariantTable {
	out := &VariantTable{
		cols:    t.cols,
		numeric: make(map[string][]float64, len(t.numeric)),
		text:    make(map[string][]string, len(t.text)),
		index:   make([]int, len(rows)),
		meta:    t.meta,
	}
	for i, r := range rows {
		out.index[i] = t.index[r]
	}
	for name, col := range t.numeric {
		sub := make([]float64, len(rows))
		for i, r := range rows {
			sub[i] = col[r]
		}
		out.numeric[name] = sub
	}
	for name, col := range t.text {
		sub := make([]string, len(rows))
		for i, r := range rows {
			sub[i] = col[r]
		}
		out.text[name] = sub
	}
	return out
}
