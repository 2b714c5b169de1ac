package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableConstruction(t *testing.T) {
	tb := NewVariantTable(Metadata{SampleNames: []string{"S1"}}, []int{0, 1})

	require.NoError(t, tb.AddNumeric("S1", []float64{0.2, 0.0}))
	assert.Error(t, tb.AddNumeric("S1", []float64{0.2, 0.0}), "duplicate column")
	assert.Error(t, tb.AddText("Gene_name", []string{"only-one"}), "length mismatch")

	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"S1"}, tb.Columns())
}

func TestTableAccessors(t *testing.T) {
	tb := testTable(t)

	codes, err := tb.Numeric("S1")
	require.NoError(t, err)
	assert.Len(t, codes, 10)

	_, err = tb.Numeric("Gene_name")
	assert.ErrorIs(t, err, ErrColumnKind)

	_, err = tb.Text("S1")
	assert.ErrorIs(t, err, ErrColumnKind)

	_, err = tb.Text("Missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	assert.True(t, tb.HasColumn("Hover_S2"))
	assert.False(t, tb.HasColumn("Hover_S3"))
}

func TestTableSelectDerives(t *testing.T) {
	tb := testTable(t)

	sub := tb.Select([]int{5, 2})
	assert.Equal(t, []int{5, 2}, sub.Index())

	codes, err := sub.Numeric("S1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.8, 0.4}, codes)

	// source table untouched
	assert.Equal(t, 10, tb.Len())
	orig, err := tb.Numeric("S1")
	require.NoError(t, err)
	assert.Equal(t, 0.2, orig[0])

	empty := tb.Select(nil)
	assert.Zero(t, empty.Len())
	assert.Equal(t, tb.Meta(), empty.Meta())
}
