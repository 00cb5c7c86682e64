package filter

import "catalog-service/internal/model"

// mapResolver resolves batches from a plain sku → batches map
type mapResolver map[string][]model.Batch

func (m mapResolver) FindBatchesForProduct(sku string) []model.Batch {
	return m[sku]
}

func batchIn(id string, countries ...string) model.Batch {
	b := model.Batch{BatchID: id}
	for _, c := range countries {
		b.ProvenanceStages = append(b.ProvenanceStages, model.ProvenanceStage{
			GeoLocation: model.GeoLocation{Country: c},
		})
	}
	return b
}

func skus(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.SKU)
	}
	return out
}

func fixtureProducts() []model.Product {
	return []model.Product{
		{
			SKU:            "tee",
			Title:          "Organic Tee",
			Description:    "Everyday basic",
			Category:       "Basics",
			Materials:      []string{"Cotton"},
			Price:          3000,
			Certifications: model.CertificationFlags{Organic: true, Fairtrade: true, GOTS: true},
			CreatedAt:      "2024-02-15T10:30:00Z",
		},
		{
			SKU:            "jacket",
			Title:          "Shell Jacket",
			Description:    "Keeps the rain out",
			Category:       "Outerwear",
			Materials:      []string{"Recycled Polyester"},
			Price:          12000,
			Certifications: model.CertificationFlags{GRI: true, LEED: true, CarbonTrust: true},
			CreatedAt:      "2024-02-20T14:00:00Z",
		},
		{
			SKU:            "pants",
			Title:          "Blended Trousers",
			Description:    "Comfortable fit",
			Category:       "Bottoms",
			Materials:      []string{"70% Organic Cotton", "30% Recycled Polyester"},
			Price:          8000,
			Certifications: model.CertificationFlags{Organic: true, Fairtrade: true, GRI: true, CarbonTrust: true},
			CreatedAt:      "2024-02-25T11:15:00Z",
		},
		{
			SKU:            "dress",
			Title:          "Natural-Dyed Dress",
			Description:    "Hand dyed",
			Category:       "Dresses",
			Materials:      []string{"Organic Cotton"},
			Price:          3000,
			Certifications: model.CertificationFlags{Organic: true, GOTS: true},
			CreatedAt:      "2024-02-15T10:30:00Z",
		},
		{
			SKU:       "orphan",
			Title:     "Unverified Scarf",
			Category:  "Accessories",
			Price:     1500,
			CreatedAt: "2024-01-01",
		},
	}
}

func fixtureResolver() mapResolver {
	cotton := batchIn("B1", "India", "Portugal", "Japan", "Vietnam")
	recycled := batchIn("B2", "Netherlands", "Vietnam")
	return mapResolver{
		"tee":    {cotton},
		"jacket": {recycled},
		"pants":  {cotton, recycled},
		"dress":  {cotton},
	}
}
