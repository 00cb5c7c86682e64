package sampledata

import "catalog-service/internal/model"

// Suppliers returns the sample supply-chain partners
func Suppliers() []model.Supplier {
	return []model.Supplier{
		{
			SupplierID:   "SUPP-001",
			SupplierName: "Organic Cotton Farmers Cooperative",
			Country:      "India",
			Certifications: model.CertificationFlags{
				Organic: true, Fairtrade: true, GOTS: true, BCI: true,
			},
			GeoLocation: model.GeoLocation{
				Latitude: 19.0760, Longitude: 72.8777,
				Address: "Mumbai, Maharashtra", Country: "India",
			},
			Description:  "Leading supplier of certified organic cotton with fair trade practices",
			ContactEmail: "contact@organiccottonindian.com",
			Website:      "https://organiccottonindian.com",
		},
		{
			SupplierID:   "SUPP-002",
			SupplierName: "EcoTextile Processors",
			Country:      "Portugal",
			Certifications: model.CertificationFlags{
				Organic: true, GOTS: true, GRI: true, LEED: true, CarbonTrust: true,
			},
			GeoLocation: model.GeoLocation{
				Latitude: 40.7128, Longitude: -8.2226,
				Address: "Porto, Portugal", Country: "Portugal",
			},
			Description:  "Sustainable textile processing with advanced water recycling and carbon-neutral operations",
			ContactEmail: "info@ecotextile-processors.eu",
			Website:      "https://ecotextile-processors.eu",
		},
		{
			SupplierID:   "SUPP-003",
			SupplierName: "Global Recycled Fibers",
			Country:      "Netherlands",
			Certifications: model.CertificationFlags{
				GRI: true, LEED: true, CarbonTrust: true,
			},
			GeoLocation: model.GeoLocation{
				Latitude: 52.3676, Longitude: 4.9041,
				Address: "Amsterdam, Netherlands", Country: "Netherlands",
			},
			Description:  "Specializes in recycled synthetic and natural fiber processing with zero-waste initiatives",
			ContactEmail: "supply@globalrecycledfibers.com",
			Website:      "https://globalrecycledfibers.com",
		},
		{
			SupplierID:   "SUPP-004",
			SupplierName: "Premium Garment Manufacturing",
			Country:      "Vietnam",
			Certifications: model.CertificationFlags{
				Fairtrade: true, BCI: true,
			},
			GeoLocation: model.GeoLocation{
				Latitude: 21.0285, Longitude: 105.8542,
				Address: "Hanoi, Vietnam", Country: "Vietnam",
			},
			Description:  "Fair trade certified garment manufacturer with ethical labor practices and quality craftsmanship",
			ContactEmail: "hello@premiumgarments.vn",
			Website:      "https://premiumgarments.vn",
		},
		{
			SupplierID:   "SUPP-005",
			SupplierName: "Natural Dye Works",
			Country:      "Japan",
			Certifications: model.CertificationFlags{
				Organic: true, Fairtrade: true, GOTS: true, CarbonTrust: true,
			},
			GeoLocation: model.GeoLocation{
				Latitude: 35.6762, Longitude: 139.6503,
				Address: "Tokyo, Japan", Country: "Japan",
			},
			Description:  "Artisanal natural dye production using traditional methods and organic plant-based materials",
			ContactEmail: "studio@naturaldyeworks.jp",
			Website:      "https://naturaldyeworks.jp",
		},
	}
}
