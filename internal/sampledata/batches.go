package sampledata

import "catalog-service/internal/model"

var (
	mumbai    = model.GeoLocation{Latitude: 19.0760, Longitude: 72.8777, Address: "Mumbai, Maharashtra", Country: "India"}
	porto     = model.GeoLocation{Latitude: 40.7128, Longitude: -8.2226, Address: "Porto, Portugal", Country: "Portugal"}
	amsterdam = model.GeoLocation{Latitude: 52.3676, Longitude: 4.9041, Address: "Amsterdam, Netherlands", Country: "Netherlands"}
	hanoi     = model.GeoLocation{Latitude: 21.0285, Longitude: 105.8542, Address: "Hanoi, Vietnam", Country: "Vietnam"}
	tokyo     = model.GeoLocation{Latitude: 35.6762, Longitude: 139.6503, Address: "Tokyo, Japan", Country: "Japan"}
	brussels  = model.GeoLocation{Latitude: 50.8503, Longitude: 4.3517, Address: "Brussels, Belgium", Country: "Belgium"}
)

// Batches returns the sample production runs.
//
// BATCH-2024-003 starts at a flax farm (SUPP-006) that has no supplier
// record, so its chain always carries one unresolved supplier.
func Batches() []model.Batch {
	return []model.Batch{
		{
			BatchID:        "BATCH-2024-001",
			BatchName:      "Spring 2024 Organic Cotton",
			ProductionDate: "2024-01-20T00:00:00Z",
			Quantity:       500,
			ProvenanceStages: []model.ProvenanceStage{
				{
					StageName:        "Raw Cotton Harvest",
					StageDescription: "Hand-picked organic cotton from cooperative farms",
					SupplierID:       "SUPP-001",
					GeoLocation:      mumbai,
					Timestamp:        "2023-10-15T08:00:00Z",
					Certifications:   model.CertificationFlags{Organic: true, Fairtrade: true, GOTS: true, BCI: true},
					CO2Grams:         420,
					MediaURLs:        []string{"https://media.ecothread.example/stages/cotton-harvest.jpg"},
				},
				{
					StageName:        "Spinning & Weaving",
					StageDescription: "Yarn spinning and fabric weaving with recycled process water",
					SupplierID:       "SUPP-002",
					GeoLocation:      porto,
					Timestamp:        "2023-11-20T09:30:00Z",
					Certifications:   model.CertificationFlags{Organic: true, GOTS: true, CarbonTrust: true},
					CO2Grams:         310,
					MediaURLs:        []string{"https://media.ecothread.example/stages/weaving.jpg"},
				},
				{
					StageName:        "Natural Dyeing",
					StageDescription: "Plant-based dyeing by artisan dyers",
					SupplierID:       "SUPP-005",
					GeoLocation:      tokyo,
					Timestamp:        "2023-12-10T10:00:00Z",
					Certifications:   model.CertificationFlags{Organic: true, GOTS: true},
					CO2Grams:         180,
					MediaURLs:        []string{"https://media.ecothread.example/stages/dyeing.jpg"},
				},
				{
					StageName:        "Garment Assembly",
					StageDescription: "Cutting, sewing and quality control",
					SupplierID:       "SUPP-004",
					GeoLocation:      hanoi,
					Timestamp:        "2024-01-15T07:45:00Z",
					Certifications:   model.CertificationFlags{Fairtrade: true, BCI: true},
					CO2Grams:         250,
					MediaURLs:        []string{"https://media.ecothread.example/stages/assembly.jpg"},
				},
			},
			TotalCO2Grams:     1160,
			VerificationToken: "vt_2024_001_8f3a",
		},
		{
			BatchID:        "BATCH-2024-002",
			BatchName:      "Recycled Polyester Limited",
			ProductionDate: "2024-02-05T00:00:00Z",
			Quantity:       300,
			ProvenanceStages: []model.ProvenanceStage{
				{
					StageName:        "Bottle Collection",
					StageDescription: "Post-consumer PET bottle collection and sorting",
					SupplierID:       "SUPP-003",
					GeoLocation:      amsterdam,
					Timestamp:        "2023-11-01T08:00:00Z",
					Certifications:   model.CertificationFlags{GRI: true},
					CO2Grams:         150,
				},
				{
					StageName:        "Fiber Processing",
					StageDescription: "Mechanical recycling into polyester fiber",
					SupplierID:       "SUPP-003",
					GeoLocation:      amsterdam,
					Timestamp:        "2023-12-01T08:00:00Z",
					Certifications:   model.CertificationFlags{GRI: true, LEED: true, CarbonTrust: true},
					CO2Grams:         265,
					MediaURLs:        []string{"https://media.ecothread.example/stages/fiber.jpg"},
				},
				{
					StageName:        "Garment Assembly",
					StageDescription: "Jacket construction with water-resistant finish",
					SupplierID:       "SUPP-004",
					GeoLocation:      hanoi,
					Timestamp:        "2024-01-20T07:00:00Z",
					Certifications:   model.CertificationFlags{Fairtrade: true, BCI: true},
					CO2Grams:         220,
				},
				{
					StageName:        "Quality Control",
					StageDescription: "Final inspection and packing",
					SupplierID:       "SUPP-004",
					GeoLocation:      hanoi,
					Timestamp:        "2024-01-30T07:00:00Z",
					Certifications:   model.CertificationFlags{Fairtrade: true},
					CO2Grams:         80,
				},
			},
			TotalCO2Grams: 715,
		},
		{
			BatchID:        "BATCH-2024-003",
			BatchName:      "Luxury Linen Summer",
			ProductionDate: "2024-02-25T00:00:00Z",
			Quantity:       200,
			ProvenanceStages: []model.ProvenanceStage{
				{
					StageName:        "Flax Harvest",
					StageDescription: "Organic flax harvested and retted in the field",
					SupplierID:       "SUPP-006",
					GeoLocation:      brussels,
					Timestamp:        "2023-08-20T08:00:00Z",
					Certifications:   model.CertificationFlags{Organic: true},
					CO2Grams:         190,
				},
				{
					StageName:        "Linen Processing",
					StageDescription: "Scutching, spinning and weaving of linen cloth",
					SupplierID:       "SUPP-002",
					GeoLocation:      porto,
					Timestamp:        "2023-10-05T09:00:00Z",
					Certifications:   model.CertificationFlags{Organic: true, LEED: true, CarbonTrust: true},
					CO2Grams:         340,
				},
				{
					StageName:        "Garment Assembly",
					StageDescription: "Shirt construction",
					SupplierID:       "SUPP-004",
					GeoLocation:      hanoi,
					Timestamp:        "2024-01-10T07:00:00Z",
					Certifications:   model.CertificationFlags{Fairtrade: true},
					CO2Grams:         240,
				},
				{
					StageName:        "Finishing",
					StageDescription: "Garment washing, pressing and packing",
					SupplierID:       "SUPP-004",
					GeoLocation:      hanoi,
					Timestamp:        "2024-02-20T07:00:00Z",
					Certifications:   model.CertificationFlags{Fairtrade: true},
					CO2Grams:         80,
				},
			},
			TotalCO2Grams: 850,
		},
	}
}
