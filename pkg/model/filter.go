package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	linq "github.com/ahmetb/go-linq"
)

// GeneNameColumn is the reserved annotation key. Its values are matched as
// "name;" substrings against the semicolon-delimited gene-name field, any
// match keeping the row.
const GeneNameColumn = "Gene_name"

// ErrIndexNotFound is returned when an explicit SV index selection names a
// label the table does not carry.
var ErrIndexNotFound = errors.New("SV index not found")

// Annotation maps annotation column names to accepted values. A row
// survives a key when its field contains at least one of the listed values.
// Non-reserved keys compose as an intersection; the reserved gene-name key
// and an explicit index selection compose as a union (see filterAnnotation).
type Annotation map[string][]string

func rowPositions(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// matchRows returns the positions whose column value satisfies match,
// preserving row order.
func matchRows(col []string, match func(string) bool) []int {
	rows := make([]int, 0, len(col))
	linq.From(rowPositions(len(col))).
		WhereT(func(i int) bool { return match(col[i]) }).
		ToSlice(&rows)
	return rows
}

func geneMatchRows(t *VariantTable, genes []string) ([]int, error) {
	col, err := t.Text(GeneNameColumn)
	if err != nil {
		return nil, err
	}
	return matchRows(col, func(v string) bool {
		for _, g := range genes {
			if strings.Contains(v, g+";") {
				return true
			}
		}
		return false
	}), nil
}

// indexRows resolves explicit SV labels to row positions, in label order.
func indexRows(t *VariantTable, labels []int) ([]int, error) {
	byLabel := make(map[int]int, t.Len())
	for pos, label := range t.Index() {
		byLabel[label] = pos
	}
	rows := make([]int, 0, len(labels))
	for _, label := range labels {
		pos, ok := byLabel[label]
		if !ok {
			return nil, fmt.Errorf("index %d: %w", label, ErrIndexNotFound)
		}
		rows = append(rows, pos)
	}
	return rows, nil
}

// dedupRows drops repeated positions, keeping the first occurrence.
func dedupRows(rows []int) []int {
	seen := make(map[int]struct{}, len(rows))
	out := rows[:0]
	for _, r := range rows {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// filterAnnotation subsets the table per the annotation selection. When
// both the gene-name list and the explicit index list are non-empty the two
// row sets are unioned (gene matches first, deduplicated); when only one is
// non-empty it applies alone. Every other key narrows the result further,
// one intersection per key.
func filterAnnotation(t *VariantTable, ann Annotation, indexList []int) (*VariantTable, error) {
	genes := ann[GeneNameColumn]

	switch {
	case len(genes) > 0 && len(indexList) > 0:
		geneRows, err := geneMatchRows(t, genes)
		if err != nil {
			return nil, err
		}
		idxRows, err := indexRows(t, indexList)
		if err != nil {
			return nil, err
		}
		t = t.Select(dedupRows(append(geneRows, idxRows...)))
	case len(genes) > 0:
		rows, err := geneMatchRows(t, genes)
		if err != nil {
			return nil, err
		}
		t = t.Select(rows)
	case len(indexList) > 0:
		rows, err := indexRows(t, indexList)
		if err != nil {
			return nil, err
		}
		t = t.Select(rows)
	}

	// Deterministic key order for the remaining intersections.
	keys := make([]string, 0, len(ann))
	for key := range ann {
		if key == GeneNameColumn || len(ann[key]) == 0 {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		col, err := t.Text(key)
		if err != nil {
			return nil, err
		}
		accepted := ann[key]
		t = t.Select(matchRows(col, func(v string) bool {
			for _, want := range accepted {
				if strings.Contains(v, want) {
					return true
				}
			}
			return false
		}))
	}
	return t, nil
}

// filterSamples drops rows where any named sample column is exactly 0.0,
// the "SV not detected" sentinel.
func filterSamples(t *VariantTable, samples []string) (*VariantTable, error) {
	for _, sample := range samples {
		col, err := t.Numeric(sample)
		if err != nil {
			return nil, err
		}
		rows := make([]int, 0, len(col))
		linq.From(rowPositions(len(col))).
			WhereT(func(i int) bool { return col[i] != 0.0 }).
			ToSlice(&rows)
		t = t.Select(rows)
	}
	return t, nil
}

// filterFiles drops rows flagged "1" in any named filter column, the
// "overlapped an excluded region" sentinel.
func filterFiles(t *VariantTable, filters []string) (*VariantTable, error) {
	for _, name := range filters {
		col, err := t.Text(name)
		if err != nil {
			return nil, err
		}
		t = t.Select(matchRows(col, func(v string) bool { return v != "1" }))
	}
	return t, nil
}
