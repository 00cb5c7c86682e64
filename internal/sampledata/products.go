package sampledata

import "catalog-service/internal/model"

const assetBase = "https://media.ecothread.example/products/"

// Products returns the sample catalog listings. Prices are in cents.
func Products() []model.Product {
	return []model.Product{
		{
			SKU:   "ECO-ORG-TSHIRT-001",
			Title: "Signature Organic Cotton T-Shirt",
			Description: "Premium organic cotton t-shirt featuring our iconic minimalist design. " +
				"Ethically sourced from Indian cooperative farms and processed through our global network of certified sustainable suppliers.",
			Price:            9900,
			Image:            assetBase + "tshirt-001.jpg",
			AdditionalImages: []string{assetBase + "tshirt-001-back.jpg", assetBase + "tshirt-001-detail.jpg"},
			Videos:           []string{assetBase + "tshirt-001.mp4"},
			Materials:        []string{"100% Organic Cotton"},
			Category:         "Basics",
			Sizes:            []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:           []string{"Natural White", "Stone Gray", "Forest Green", "Navy Blue"},
			InStock:          true,
			BatchIDs:         []string{"BATCH-2024-001"},
			Certifications: model.CertificationFlags{
				Organic: true, Fairtrade: true, GOTS: true, BCI: true,
			},
			TotalCO2Grams: 1160,
			CreatedAt:     "2024-02-15T10:30:00Z",
			UpdatedAt:     "2024-02-15T10:30:00Z",
		},
		{
			SKU:   "ECO-REC-JACKET-001",
			Title: "Urban Recycled Polyester Jacket",
			Description: "Contemporary casual jacket crafted from 100% recycled polyester fibers. " +
				"Features innovative fabric technology from our Amsterdam processing facility and a water-resistant finish.",
			Price:            18900,
			Image:            assetBase + "jacket-001.jpg",
			AdditionalImages: []string{assetBase + "jacket-001-side.jpg"},
			Videos:           []string{},
			Materials:        []string{"100% Recycled Polyester"},
			Category:         "Outerwear",
			Sizes:            []string{"XS", "S", "M", "L", "XL"},
			Colors:           []string{"Charcoal Black", "Deep Navy", "Olive Green", "Graphite Gray"},
			InStock:          true,
			BatchIDs:         []string{"BATCH-2024-002"},
			Certifications: model.CertificationFlags{
				GRI: true, LEED: true, CarbonTrust: true,
			},
			TotalCO2Grams: 715,
			CreatedAt:     "2024-02-20T14:00:00Z",
			UpdatedAt:     "2024-02-20T14:00:00Z",
		},
		{
			SKU:   "ECO-LIN-SHIRT-002",
			Title: "Luxury Linen Summer Shirt",
			Description: "Exquisite Belgian linen shirt showcasing the finest sustainable craftsmanship. " +
				"Lightweight and breathable, traced back to certified organic flax farms.",
			Price:            24500,
			Image:            assetBase + "linen-002.jpg",
			AdditionalImages: []string{assetBase + "linen-002-detail.jpg"},
			Videos:           []string{assetBase + "linen-002.mp4"},
			Materials:        []string{"100% Belgian Linen"},
			Category:         "Tops",
			Sizes:            []string{"XS", "S", "M", "L", "XL"},
			Colors:           []string{"Ivory", "Soft Beige", "Sky Blue", "Sage Green"},
			InStock:          true,
			BatchIDs:         []string{"BATCH-2024-003"},
			Certifications: model.CertificationFlags{
				Organic: true, Fairtrade: true, LEED: true, CarbonTrust: true,
			},
			TotalCO2Grams: 850,
			CreatedAt:     "2024-03-01T09:00:00Z",
			UpdatedAt:     "2024-03-01T09:00:00Z",
		},
		{
			SKU:   "ECO-MIX-PANTS-001",
			Title: "Blended Sustainable Trousers",
			Description: "Sophisticated trousers blending organic cotton with recycled polyester for durability and comfort. " +
				"Sourced from our curated network of ethical manufacturers across three continents.",
			Price:            16900,
			Image:            assetBase + "pants-001.jpg",
			AdditionalImages: []string{assetBase + "pants-001-back.jpg"},
			Videos:           []string{},
			Materials:        []string{"70% Organic Cotton", "30% Recycled Polyester"},
			Category:         "Bottoms",
			Sizes:            []string{"24", "26", "28", "30", "32", "34", "36"},
			Colors:           []string{"Classic Black", "Stone Gray", "Navy Blue", "Khaki Beige"},
			InStock:          true,
			BatchIDs:         []string{"BATCH-2024-001", "BATCH-2024-002"},
			Certifications: model.CertificationFlags{
				Organic: true, Fairtrade: true, GOTS: true, GRI: true, BCI: true, CarbonTrust: true,
			},
			TotalCO2Grams: 1450,
			CreatedAt:     "2024-02-25T11:15:00Z",
			UpdatedAt:     "2024-02-25T11:15:00Z",
		},
		{
			SKU:   "ECO-NTL-DRESS-001",
			Title: "Artisanal Natural-Dyed Dress",
			Description: "Statement piece featuring hand-dyed organic cotton using natural plant-based dyes. " +
				"Collaboratively produced by our Japanese artisan dyers and Vietnamese assembly team.",
			Price:            29900,
			Image:            assetBase + "dress-001.jpg",
			AdditionalImages: []string{assetBase + "dress-001-detail.jpg"},
			Videos:           []string{assetBase + "dress-001.mp4"},
			Materials:        []string{"100% Organic Cotton"},
			Category:         "Dresses",
			Sizes:            []string{"XS", "S", "M", "L", "XL"},
			Colors:           []string{"Indigo Blue", "Rust Orange", "Deep Purple", "Forest Green"},
			InStock:          true,
			BatchIDs:         []string{"BATCH-2024-001"},
			Certifications: model.CertificationFlags{
				Organic: true, Fairtrade: true, GOTS: true, BCI: true, CarbonTrust: true,
			},
			TotalCO2Grams: 1160,
			CreatedAt:     "2024-02-15T10:30:00Z",
			UpdatedAt:     "2024-02-15T10:30:00Z",
		},
	}
}
