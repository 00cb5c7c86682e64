package catalog

import "catalog-service/internal/model"

func stage(supplierID, country string, co2 int64) model.ProvenanceStage {
	return model.ProvenanceStage{
		StageName:   "stage-" + supplierID,
		SupplierID:  supplierID,
		GeoLocation: model.GeoLocation{Country: country},
		CO2Grams:    co2,
	}
}

// newTestStore builds a small catalog with one dangling batch reference and
// one dangling supplier reference.
func newTestStore() *Store {
	products := []model.Product{
		{
			SKU:            "A",
			Title:          "Organic Tee",
			Description:    "Soft everyday shirt",
			Materials:      []string{"Cotton"},
			Category:       "Basics",
			Price:          100,
			BatchIDs:       []string{"X"},
			Certifications: model.CertificationFlags{Organic: true, GOTS: true},
			TotalCO2Grams:  500,
			CreatedAt:      "2024-01-01",
		},
		{
			SKU:            "B",
			Title:          "Rain Jacket",
			Description:    "Water-resistant shell",
			Materials:      []string{"Recycled Polyester"},
			Category:       "Outerwear",
			Price:          50,
			BatchIDs:       []string{"MISSING", "Y"},
			Certifications: model.CertificationFlags{GRI: true},
			TotalCO2Grams:  300,
			CreatedAt:      "2024-02-01",
		},
		{
			SKU:            "C",
			Title:          "Linen Shirt",
			Description:    "Summer weight",
			Materials:      []string{"Linen", "ORGANIC flax"},
			Category:       "Basics",
			Price:          70,
			Certifications: model.CertificationFlags{Organic: true},
			TotalCO2Grams:  250,
			CreatedAt:      "2024-03-01",
		},
	}
	batches := []model.Batch{
		{
			BatchID: "X",
			ProvenanceStages: []model.ProvenanceStage{
				stage("S1", "India", 100),
				stage("S2", "Japan", 200),
				stage("S1", "India", 50),
			},
			TotalCO2Grams: 350,
		},
		{
			BatchID: "Y",
			ProvenanceStages: []model.ProvenanceStage{
				stage("S3", "Netherlands", 120),
				stage("GHOST", "Vietnam", 80),
			},
			TotalCO2Grams: 999,
		},
		{
			BatchID:       "X",
			BatchName:     "shadowed duplicate",
			TotalCO2Grams: 1,
		},
	}
	suppliers := []model.Supplier{
		{SupplierID: "S1", SupplierName: "Cotton Coop", Country: "India"},
		{SupplierID: "S2", SupplierName: "Dye Works", Country: "Japan"},
		{SupplierID: "S3", SupplierName: "Fiber Recyclers", Country: "Netherlands"},
		{SupplierID: "S4", SupplierName: "Second Indian Mill", Country: "India"},
	}
	return NewStore(products, batches, suppliers)
}

func skus(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.SKU)
	}
	return out
}

func supplierIDs(suppliers []model.Supplier) []string {
	out := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, s.SupplierID)
	}
	return out
}
