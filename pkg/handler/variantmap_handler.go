package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cytham/variantmap/logger"
	"github.com/cytham/variantmap/pkg/handler/request"
	"github.com/cytham/variantmap/pkg/model"
	"github.com/cytham/variantmap/pkg/render"
	"go.uber.org/zap"
)

// buildTimeout bounds one dataset load + matrix build.
const buildTimeout = 30 * time.Second

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

// statusFor maps build failures onto response codes: unknown columns or SV
// labels are the caller naming things the dataset does not have, bad
// options are bad requests, anything else is on us.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrColumnNotFound), errors.Is(err, model.ErrIndexNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNoSampleColumns),
		errors.Is(err, model.ErrColumnKind),
		errors.Is(err, model.ErrInvalidOptions),
		errors.Is(err, render.ErrColorscaleLength):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// VariantMapFigureHandler serves GET /api/v1/variantmap: query parameters
// in, plotly figure JSON out.
func (appctx *AppContext) VariantMapFigureHandler(w http.ResponseWriter, r *http.Request) {

	req, err := request.FromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fig, err := appctx.buildFigure(r.Context(), req)
	if err != nil {
		logger.Error("Figure build failed", zap.Error(err))
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, fig)
}

// VariantMapFigureJSONHandler serves POST /api/v1/variantmap with the same
// request as a JSON body, for callers whose selections outgrow a query
// string.
func (appctx *AppContext) VariantMapFigureJSONHandler(w http.ResponseWriter, r *http.Request) {

	var req request.VariantMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fig, err := appctx.buildFigure(r.Context(), req)
	if err != nil {
		logger.Error("Figure build failed", zap.Error(err))
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, fig)
}

// buildFigure is the single-shot transformation: load the table, build the
// batch matrix, dress it as a figure. View-config overrides sit under the
// per-request ones.
func (appctx *AppContext) buildFigure(ctx context.Context, req request.VariantMapRequest) (*render.Figure, error) {

	ctx, cancel := context.WithTimeout(ctx, buildTimeout)
	defer cancel()

	table, err := appctx.Tables.LoadTable(ctx)
	if err != nil {
		return nil, err
	}

	matrix, err := model.BuildMatrix(table, model.Options{
		EntriesPerBatch: req.EntriesPerBatch,
		BatchNo:         req.BatchNo,
		Annotation:      model.Annotation(req.Annotation),
		IndexList:       req.IndexList,
		FilterSample:    req.FilterSample,
		FilterFile:      req.FilterFile,
		SampleOrder:     req.SampleOrder,
		SampleNames:     mergeOverrides(appctx.View.SampleNames, req.SampleNames),
	})
	if err != nil {
		return nil, err
	}

	opts := render.DefaultFigureOptions()
	opts.Title = appctx.View.Title
	if req.Title != "" {
		opts.Title = req.Title
	}
	if req.ColorbarThick != 0 {
		opts.ColorbarThickness = req.ColorbarThick
	}
	if req.Rangeslider != nil {
		opts.Rangeslider = *req.Rangeslider
	}
	if req.Height != 0 {
		opts.Height = req.Height
	}
	if req.Width != 0 {
		opts.Width = req.Width
	}
	opts.Colors = mergeOverrides(appctx.View.ClassColors, req.ColorList)

	return render.NewVariantMapFigure(matrix, opts)
}

// mergeOverrides layers the request map over the deployment map.
func mergeOverrides(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
