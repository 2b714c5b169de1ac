package model

// Batching splits the filtered row set into contiguous 1-based groups.
// Integer ceiling division keeps exact multiples (say 5000 rows at 2500 per
// batch) at their natural group count.

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// batchPartition returns the number of batch groups and the row count per
// group for n filtered rows.
func batchPartition(n, perBatch int) (divisions, size int) {
	if n == 0 {
		return 0, 0
	}
	divisions = ceilDiv(n, perBatch)
	size = ceilDiv(n, divisions)
	return divisions, size
}

// selectBatch keeps the rows of the requested batch group, preserving row
// order. An out-of-range batchNo yields an empty selection, not an error.
func selectBatch(t *VariantTable, perBatch, batchNo int) (*VariantTable, int) {
	n := t.Len()
	divisions, size := batchPartition(n, perBatch)
	if divisions == 0 || batchNo < 1 {
		return t.Select(nil), divisions
	}
	start := (batchNo - 1) * size
	if start >= n {
		return t.Select(nil), divisions
	}
	end := start + size
	if end > n {
		end = n
	}
	rows := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, i)
	}
	return t.Select(rows), divisions
}
