package main

import (
	"context"
	"net/http"
	"path"
	"time"

	"github.com/joho/godotenv"

	"github.com/cytham/variantmap/internal/util"
	"github.com/cytham/variantmap/logger"
	"github.com/cytham/variantmap/pkg/config"
	vmdb "github.com/cytham/variantmap/pkg/db"
	"github.com/cytham/variantmap/pkg/handler"
	"github.com/cytham/variantmap/pkg/middle"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {

	VERSION := "0.1.0"

	// Try load env before reading config
	dotenvErr := godotenv.Load()

	cfg, cfgErr := config.FromEnv()
	if cfgErr != nil {
		panic(cfgErr)
	}

	logLevel := zapcore.InfoLevel
	if cfg.Debug {
		logLevel = zapcore.DebugLevel
	}
	if err := logger.InitLogger(logLevel); err != nil {
		panic(err)
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	if !util.DirExists(cfg.DataDir) {
		logger.Warn("Data directory missing", zap.String("VM_DATA", cfg.DataDir))
	}

	datasetPath := path.Join(cfg.DataDir, "variantmap.db")
	viewPath := path.Join(cfg.DataDir, "view.yaml")

	store, storeErr := vmdb.Open(datasetPath)
	if storeErr != nil {
		logger.Fatal("Cannot open dataset", zap.String("path", datasetPath), zap.Error(storeErr))
	}
	defer store.Close()

	verifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.Verify(verifyCtx); err != nil {
		cancel()
		logger.Fatal("Dataset rejected", zap.Error(err))
	}
	cancel()

	// Optional presentation overrides next to the dataset
	var view config.ViewConfig
	if util.FileExists(viewPath) {
		var viewErr error
		view, viewErr = config.LoadViewConfig(viewPath)
		if viewErr != nil {
			logger.Fatal("Bad view config", zap.Error(viewErr))
		}
		logger.Info("View config loaded", zap.String("path", viewPath))
	}

	appctx := &handler.AppContext{
		Tables: store,
		View:   view,
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Dataset open", zap.String("path", datasetPath))

	mux := NewRouter(appctx)

	// Apply middleware. Request IDs attach outermost so the access log
	// sees them.
	m := middle.LoggingMiddleware(logger.NewHTTPLogger(logLevel))
	app := middle.RequestIDMiddleware()(m(mux))

	logger.Info("Server starting", zap.String("address", cfg.Address))
	httpErr := http.ListenAndServe(cfg.Address, app)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

func NewRouter(appctx *handler.AppContext) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// API routes
	mux.HandleFunc("GET /api/v1/health", appctx.HealthCheck)
	mux.HandleFunc("GET /api/v1/samples", appctx.ListSamplesHandler)
	mux.HandleFunc("GET /api/v1/variantmap", appctx.VariantMapFigureHandler)
	mux.HandleFunc("POST /api/v1/variantmap", appctx.VariantMapFigureJSONHandler)

	return mux
}
