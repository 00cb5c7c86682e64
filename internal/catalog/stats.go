package catalog

import "catalog-service/internal/model"

// Stats summarises the resident catalog
type Stats struct {
	Products       int                             `json:"products"`
	Batches        int                             `json:"batches"`
	Suppliers      int                             `json:"suppliers"`
	Stages         int                             `json:"stages"`
	TotalCO2Grams  int64                           `json:"totalCo2Grams"`
	Certifications map[model.CertificationFlag]int `json:"certifications"`
	Categories     map[string]int                  `json:"categories"`
}

// CO2Discrepancy flags a batch whose stored total disagrees with its stages
type CO2Discrepancy struct {
	BatchID       string `json:"batchId"`
	StoredGrams   int64  `json:"storedGrams"`
	StageSumGrams int64  `json:"stageSumGrams"`
}

// Stats counts entities, sums product footprints and counts products per
// certification flag and per category
func (s *Store) Stats() Stats {
	st := Stats{
		Products:       len(s.products),
		Batches:        len(s.batches),
		Suppliers:      len(s.suppliers),
		Certifications: make(map[model.CertificationFlag]int),
		Categories:     make(map[string]int),
	}
	for _, f := range model.AllCertificationFlags() {
		st.Certifications[f] = 0
	}
	for _, p := range s.products {
		st.TotalCO2Grams += p.TotalCO2Grams
		st.Categories[p.Category]++
		for _, f := range p.Certifications.Active() {
			st.Certifications[f]++
		}
	}
	for _, b := range s.batches {
		st.Stages += len(b.ProvenanceStages)
	}
	return st
}

// CO2Discrepancies reports batches whose stored TotalCO2Grams differs from
// the sum of their stages. The stored total is still what every query uses.
func (s *Store) CO2Discrepancies() []CO2Discrepancy {
	var out []CO2Discrepancy
	for _, b := range s.batches {
		if sum := b.StageCO2Grams(); sum != b.TotalCO2Grams {
			out = append(out, CO2Discrepancy{
				BatchID:       b.BatchID,
				StoredGrams:   b.TotalCO2Grams,
				StageSumGrams: sum,
			})
		}
	}
	return out
}
