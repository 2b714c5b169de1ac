package model

import (
	"errors"
	"fmt"
)

// DefaultEntriesPerBatch bounds the per-render data volume when the caller
// does not say otherwise.
const DefaultEntriesPerBatch = 2500

// ErrInvalidOptions is returned for option values no batch partition can
// satisfy.
var ErrInvalidOptions = errors.New("invalid options")

// Options selects, filters and pages the SV entries of one matrix build.
// The zero value plots the first batch of the whole table with the
// metadata sample order.
type Options struct {
	EntriesPerBatch int               // SV entries per batch, default 2500
	BatchNo         int               // 1-based batch to display, default 1
	Annotation      Annotation        // annotation value filters, see filterAnnotation
	IndexList       []int             // explicit SV label allow-list, unions with gene names
	FilterSample    []string          // drop rows these samples do not carry
	FilterFile      []string          // drop rows flagged by these filter columns
	SampleOrder     []string          // display order, default metadata sample list
	SampleNames     map[string]string // display-name overrides, partial
}

// RenderMatrix is everything a heatmap renderer needs: one Z row per
// sample, a parallel hover-text matrix and the display labels. Rows are
// pre-reversed so a bottom-up renderer shows the first configured sample on
// top. Batches reports how many batch groups the filtered table splits
// into.
type RenderMatrix struct {
	Z       [][]float64 `json:"z"`
	Hover   [][]string  `json:"hover"`
	Labels  []string    `json:"labels"`
	Batches int         `json:"batches"`
}

// resolveSampleOrder keeps the requested samples that are actual table
// columns, preserving the requested order.
func resolveSampleOrder(t *VariantTable, order []string) []string {
	if order == nil {
		order = t.Meta().SampleNames
	}
	resolved := make([]string, 0, len(order))
	for _, s := range order {
		if t.HasColumn(s) {
			resolved = append(resolved, s)
		}
	}
	return resolved
}

func reverseRows[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// BuildMatrix runs the full pipeline: sample-order resolution, annotation /
// sample / file filtering, batch selection, transpose and reversal. A batch
// number past the last group yields a matrix with zero entries per sample,
// not an error.
func BuildMatrix(t *VariantTable, opts Options) (*RenderMatrix, error) {
	perBatch := opts.EntriesPerBatch
	if perBatch == 0 {
		perBatch = DefaultEntriesPerBatch
	}
	if perBatch < 1 {
		return nil, fmt.Errorf("entries per batch must be positive, got %d: %w", perBatch, ErrInvalidOptions)
	}
	batchNo := opts.BatchNo
	if batchNo == 0 {
		batchNo = 1
	}

	samples := resolveSampleOrder(t, opts.SampleOrder)
	if len(samples) == 0 {
		return nil, ErrNoSampleColumns
	}

	cur, err := filterAnnotation(t, opts.Annotation, opts.IndexList)
	if err != nil {
		return nil, err
	}
	if cur, err = filterSamples(cur, opts.FilterSample); err != nil {
		return nil, err
	}
	if cur, err = filterFiles(cur, opts.FilterFile); err != nil {
		return nil, err
	}

	cur, batches := selectBatch(cur, perBatch, batchNo)

	z := make([][]float64, 0, len(samples))
	hover := make([][]string, 0, len(samples))
	for _, sample := range samples {
		codes, err := cur.Numeric(sample)
		if err != nil {
			return nil, err
		}
		z = append(z, append([]float64{}, codes...))

		texts, err := cur.Text(HoverPrefix + sample)
		if err != nil {
			return nil, err
		}
		hover = append(hover, append([]string{}, texts...))
	}
	reverseRows(z)
	reverseRows(hover)

	// Partial override: unknown samples keep their dataset ID.
	labels := make([]string, len(samples))
	for i, sample := range samples {
		if name, ok := opts.SampleNames[sample]; ok {
			labels[i] = name
		} else {
			labels[i] = sample
		}
	}
	reverseRows(labels)

	return &RenderMatrix{
		Z:       z,
		Hover:   hover,
		Labels:  labels,
		Batches: batches,
	}, nil
}
