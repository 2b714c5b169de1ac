package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// AnnotationPrefix marks annotation-filter query parameters on the GET
// form: ann_Gene_type=protein_coding,lncRNA narrows the Gene_type column.
// Same prefix convention as HTML form checkboxes.
const AnnotationPrefix = "ann_"

// splitCSV splits a comma-separated parameter, dropping empty entries.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseInts(raw string) ([]int, error) {
	var out []int
	for _, p := range splitCSV(raw) {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: not an integer: %q", name, raw)
	}
	return v, nil
}

func boolParam(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: not a bool: %q", name, raw)
	}
	return &v, nil
}

// FromQuery builds a VariantMapRequest out of GET query parameters.
// Recognized: entries_per_batch, batch_no, genes, indexes, ann_<Column>,
// filter_sample, filter_file, sample_order, title, colorbar_thick,
// rangeslider, height, width. List parameters are comma separated.
func FromQuery(q url.Values) (VariantMapRequest, error) {
	var req VariantMapRequest
	var err error

	if req.EntriesPerBatch, err = intParam(q, "entries_per_batch"); err != nil {
		return req, err
	}
	if req.BatchNo, err = intParam(q, "batch_no"); err != nil {
		return req, err
	}
	if req.ColorbarThick, err = intParam(q, "colorbar_thick"); err != nil {
		return req, err
	}
	if req.Height, err = intParam(q, "height"); err != nil {
		return req, err
	}
	if req.Width, err = intParam(q, "width"); err != nil {
		return req, err
	}
	if req.Rangeslider, err = boolParam(q, "rangeslider"); err != nil {
		return req, err
	}
	if req.IndexList, err = parseInts(q.Get("indexes")); err != nil {
		return req, fmt.Errorf("parameter indexes: %w", err)
	}

	req.FilterSample = splitCSV(q.Get("filter_sample"))
	req.FilterFile = splitCSV(q.Get("filter_file"))
	req.SampleOrder = splitCSV(q.Get("sample_order"))
	req.Title = q.Get("title")

	ann := make(map[string][]string)
	if genes := splitCSV(q.Get("genes")); genes != nil {
		ann["Gene_name"] = genes
	}
	for key := range q {
		if !strings.HasPrefix(key, AnnotationPrefix) {
			continue
		}
		column := strings.TrimPrefix(key, AnnotationPrefix)
		if values := splitCSV(q.Get(key)); column != "" && values != nil {
			ann[column] = values
		}
	}
	if len(ann) > 0 {
		req.Annotation = ann
	}

	return req, nil
}
