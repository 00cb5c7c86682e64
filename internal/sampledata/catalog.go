// Package sampledata holds the built-in demonstration catalog served when no
// other dataset is wired in.
package sampledata

import (
	"catalog-service/internal/catalog"

	"go.uber.org/zap"
)

// NewStore builds a catalog store over the sample dataset
func NewStore(log *zap.Logger) *catalog.Store {
	return catalog.NewStore(Products(), Batches(), Suppliers(), catalog.WithLogger(log))
}
