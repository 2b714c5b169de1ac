package request

// VariantMapRequest selects, filters and styles one VariantMap figure. The
// same struct backs the JSON POST body and the query-parameter GET form
// (see FromQuery). Zero values mean "use the default".
type VariantMapRequest struct {
	EntriesPerBatch int                 `json:"entries_per_batch"` // SV entries per batch, default 2500
	BatchNo         int                 `json:"batch_no"`          // 1-based batch to display, default 1
	Annotation      map[string][]string `json:"annotation"`        // annotation column -> accepted values
	IndexList       []int               `json:"index_list"`        // explicit SV labels, unions with Gene_name
	FilterSample    []string            `json:"filter_sample"`     // samples whose carried rows are kept only
	FilterFile      []string            `json:"filter_file"`       // filter columns to activate
	SampleOrder     []string            `json:"sample_order"`      // plotting order, default dataset order
	SampleNames     map[string]string   `json:"sample_names"`      // display-name overrides
	Title           string              `json:"title"`
	ColorList       map[string]string   `json:"color_list"`     // SV class color overrides
	ColorbarThick   int                 `json:"colorbar_thick"` // default 25
	Rangeslider     *bool               `json:"rangeslider"`    // default true
	Height          int                 `json:"height"`         // default 500
	Width           int                 `json:"width"`          // default 600
}
