package catalog

import (
	"catalog-service/internal/model"

	"go.uber.org/zap"
)

// FindProductBySKU returns the first product with the given sku
func (s *Store) FindProductBySKU(sku string) (model.Product, bool) {
	for _, p := range s.products {
		if p.SKU == sku {
			return p, true
		}
	}
	return model.Product{}, false
}

// FindProductsByCategory returns products whose category matches exactly (case-sensitive)
func (s *Store) FindProductsByCategory(category string) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FindBatchByID returns the first batch with the given id
func (s *Store) FindBatchByID(batchID string) (model.Batch, bool) {
	for _, b := range s.batches {
		if b.BatchID == batchID {
			return b, true
		}
	}
	return model.Batch{}, false
}

// FindBatchesForProduct resolves the product's batch references in the order
// the product lists them. Unknown products and dangling batch ids yield nothing.
func (s *Store) FindBatchesForProduct(sku string) []model.Batch {
	product, ok := s.FindProductBySKU(sku)
	if !ok {
		return nil
	}

	var out []model.Batch
	for _, id := range product.BatchIDs {
		b, ok := s.FindBatchByID(id)
		if !ok {
			s.log.Debug("Dangling batch reference",
				zap.String("sku", sku),
				zap.String("batch_id", id))
			continue
		}
		out = append(out, b)
	}
	return out
}

// FindSupplierByID returns the first supplier with the given id
func (s *Store) FindSupplierByID(supplierID string) (model.Supplier, bool) {
	for _, sup := range s.suppliers {
		if sup.SupplierID == supplierID {
			return sup, true
		}
	}
	return model.Supplier{}, false
}

// FindSuppliersForCountry returns suppliers registered in the given country
func (s *Store) FindSuppliersForCountry(country string) []model.Supplier {
	var out []model.Supplier
	for _, sup := range s.suppliers {
		if sup.Country == country {
			out = append(out, sup)
		}
	}
	return out
}

// FindSuppliersForBatch returns each supplier involved in the batch once,
// in the order its first stage appears.
func (s *Store) FindSuppliersForBatch(batchID string) []model.Supplier {
	batch, ok := s.FindBatchByID(batchID)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(batch.ProvenanceStages))
	var out []model.Supplier
	for _, stage := range batch.ProvenanceStages {
		if _, dup := seen[stage.SupplierID]; dup {
			continue
		}
		seen[stage.SupplierID] = struct{}{}

		sup, ok := s.FindSupplierByID(stage.SupplierID)
		if !ok {
			s.log.Debug("Dangling supplier reference",
				zap.String("batch_id", batchID),
				zap.String("supplier_id", stage.SupplierID))
			continue
		}
		out = append(out, sup)
	}
	return out
}

// TotalCO2ForCategory sums the stored product footprints of a category
func (s *Store) TotalCO2ForCategory(category string) int64 {
	var total int64
	for _, p := range s.FindProductsByCategory(category) {
		total += p.TotalCO2Grams
	}
	return total
}

// FindProductsByCertification returns products holding the given flag
func (s *Store) FindProductsByCertification(flag model.CertificationFlag) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.Certifications.Has(flag) {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts matches the query case-insensitively against title,
// description and materials. An empty query matches every product.
func (s *Store) SearchProducts(query string) []model.Product {
	if query == "" {
		return s.Products()
	}

	folded := FoldText(query)
	var out []model.Product
	for _, p := range s.products {
		fields := append([]string{p.Title, p.Description}, p.Materials...)
		if ContainsText(folded, fields...) {
			out = append(out, p)
		}
	}
	return out
}

// OriginCountries lists the distinct stage countries of a product's batches
// in traversal order
func (s *Store) OriginCountries(sku string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, b := range s.FindBatchesForProduct(sku) {
		for _, stage := range b.ProvenanceStages {
			c := stage.GeoLocation.Country
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
