package catalog

import "catalog-service/internal/model"

// BatchProvenance is a batch together with the suppliers of its stages
type BatchProvenance struct {
	Batch     model.Batch      `json:"batch"`
	Suppliers []model.Supplier `json:"suppliers"`
}

// Provenance is the full product → batch → supplier chain of one product
type Provenance struct {
	Product model.Product     `json:"product"`
	Batches []BatchProvenance `json:"batches"`
}

// ProvenanceFor assembles the provenance chain of a product. Missing batches
// and suppliers are skipped; only an unknown sku reports false.
func (s *Store) ProvenanceFor(sku string) (Provenance, bool) {
	product, ok := s.FindProductBySKU(sku)
	if !ok {
		return Provenance{}, false
	}

	prov := Provenance{Product: product, Batches: []BatchProvenance{}}
	for _, b := range s.FindBatchesForProduct(sku) {
		prov.Batches = append(prov.Batches, BatchProvenance{
			Batch:     b,
			Suppliers: s.FindSuppliersForBatch(b.BatchID),
		})
	}
	return prov, true
}
