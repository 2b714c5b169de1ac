package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("entries_per_batch", "500")
	q.Set("batch_no", "2")
	q.Set("genes", "BRCA1, TP53")
	q.Set("indexes", "4,7")
	q.Set("ann_Gene_type", "protein_coding,lncRNA")
	q.Set("filter_sample", "S3")
	q.Set("sample_order", "S2,S1")
	q.Set("rangeslider", "false")
	q.Set("title", "Cohort A")

	req, err := FromQuery(q)
	require.NoError(t, err)

	assert.Equal(t, 500, req.EntriesPerBatch)
	assert.Equal(t, 2, req.BatchNo)
	assert.Equal(t, []int{4, 7}, req.IndexList)
	assert.Equal(t, []string{"S3"}, req.FilterSample)
	assert.Equal(t, []string{"S2", "S1"}, req.SampleOrder)
	assert.Equal(t, "Cohort A", req.Title)
	require.NotNil(t, req.Rangeslider)
	assert.False(t, *req.Rangeslider)
	assert.Equal(t, map[string][]string{
		"Gene_name": {"BRCA1", "TP53"},
		"Gene_type": {"protein_coding", "lncRNA"},
	}, req.Annotation)
}

func TestFromQueryEmpty(t *testing.T) {
	req, err := FromQuery(url.Values{})
	require.NoError(t, err)

	assert.Zero(t, req.EntriesPerBatch)
	assert.Zero(t, req.BatchNo)
	assert.Nil(t, req.Annotation)
	assert.Nil(t, req.Rangeslider)
	assert.Nil(t, req.SampleOrder)
}

func TestFromQueryRejectsGarbage(t *testing.T) {
	for _, tc := range []url.Values{
		{"entries_per_batch": {"lots"}},
		{"batch_no": {"1.5"}},
		{"indexes": {"1,two"}},
		{"rangeslider": {"maybe"}},
		{"height": {"tall"}},
	} {
		_, err := FromQuery(tc)
		assert.Error(t, err, "%v", tc)
	}
}
