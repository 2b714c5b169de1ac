package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchPartition(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		perBatch  int
		divisions int
		size      int
	}{
		{"empty", 0, 2500, 0, 0},
		{"single short batch", 10, 2500, 1, 10},
		{"exact multiple stays exact", 5000, 2500, 2, 2500},
		{"one over", 5001, 2500, 3, 1667},
		{"tiny batches", 10, 3, 4, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			divisions, size := batchPartition(tc.n, tc.perBatch)
			assert.Equal(t, tc.divisions, divisions)
			assert.Equal(t, tc.size, size)
		})
	}
}

// Every row lands in exactly one batch, and walking the batches in order
// reconstructs the filtered row set.
func TestSelectBatchReconstruction(t *testing.T) {
	tb := testTable(t)

	first, divisions := selectBatch(tb, 3, 1)
	require.Equal(t, 4, divisions)

	var rebuilt []int
	rebuilt = append(rebuilt, first.Index()...)
	for batchNo := 2; batchNo <= divisions; batchNo++ {
		part, again := selectBatch(tb, 3, batchNo)
		assert.Equal(t, divisions, again)
		rebuilt = append(rebuilt, part.Index()...)
	}

	assert.Equal(t, tb.Index(), rebuilt)
}

func TestSelectBatchOutOfRange(t *testing.T) {
	tb := testTable(t)

	for _, batchNo := range []int{0, -1, 5, 99} {
		part, divisions := selectBatch(tb, 3, batchNo)
		assert.Equal(t, 4, divisions)
		assert.Zero(t, part.Len())
	}
}
