package catalog

import (
	"catalog-service/internal/model"

	"go.uber.org/zap"
)

// Store is the resident, read-only catalog. It is built once and may be
// shared freely between goroutines.
type Store struct {
	products  []model.Product
	batches   []model.Batch
	suppliers []model.Supplier
	log       *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used to report dangling references
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore copies the given collections into a new Store
func NewStore(products []model.Product, batches []model.Batch, suppliers []model.Supplier, opts ...Option) *Store {
	s := &Store{
		products:  append([]model.Product(nil), products...),
		batches:   append([]model.Batch(nil), batches...),
		suppliers: append([]model.Supplier(nil), suppliers...),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products returns the catalog products in catalog order
func (s *Store) Products() []model.Product {
	return append([]model.Product(nil), s.products...)
}

// Batches returns all batches in catalog order
func (s *Store) Batches() []model.Batch {
	return append([]model.Batch(nil), s.batches...)
}

// Suppliers returns all suppliers in catalog order
func (s *Store) Suppliers() []model.Supplier {
	return append([]model.Supplier(nil), s.suppliers...)
}
