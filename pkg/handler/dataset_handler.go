package handler

import (
	"net/http"

	"github.com/cytham/variantmap/logger"
	"go.uber.org/zap"
)

// SampleInfo pairs a dataset sample ID with its display label.
type SampleInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListSamplesHandler serves GET /api/v1/samples: the canonical sample
// order of the dataset, with any display-name overrides applied.
func (appctx *AppContext) ListSamplesHandler(w http.ResponseWriter, r *http.Request) {

	samples, err := appctx.Tables.Samples(r.Context())
	if err != nil {
		logger.Error("Sample listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	infos := make([]SampleInfo, 0, len(samples))
	for _, id := range samples {
		label := id
		if name, ok := appctx.View.SampleNames[id]; ok {
			label = name
		}
		infos = append(infos, SampleInfo{ID: id, Label: label})
	}

	writeJSON(w, http.StatusOK, infos)
}
