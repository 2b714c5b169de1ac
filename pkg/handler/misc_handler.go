// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"

	"github.com/cytham/variantmap/logger"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Samples   int       `json:"samples"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck reports service health including whether the dataset answers.
func (appctx *AppContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	samples, err := appctx.Tables.Samples(r.Context())
	if err != nil {
		logger.Error("Health check cannot read dataset", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Health:    "degraded",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Health:    "ok",
		Samples:   len(samples),
		Timestamp: time.Now(),
	})
}
