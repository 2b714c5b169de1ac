package handler

// DI for all handlers.

import (
	"context"

	"github.com/cytham/variantmap/pkg/config"
	"github.com/cytham/variantmap/pkg/model"
)

// TableSource is what handlers need from the dataset store.
type TableSource interface {
	LoadTable(ctx context.Context) (*model.VariantTable, error)
	Samples(ctx context.Context) ([]string, error)
}

// AppContext carries the dataset source and the per-deployment view
// settings into the handlers.
type AppContext struct {
	Tables TableSource
	View   config.ViewConfig
}
