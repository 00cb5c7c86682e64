package model

// Product represents a catalog listing with its provenance references.
// Price is in minor currency units (cents).
type Product struct {
	SKU              string             `json:"sku"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Price            int64              `json:"price"`
	Image            string             `json:"image"`
	AdditionalImages []string           `json:"additionalImages"`
	Videos           []string           `json:"videos"`
	Materials        []string           `json:"materials"`
	Category         string             `json:"category"`
	Sizes            []string           `json:"sizes"`
	Colors           []string           `json:"colors"`
	InStock          bool               `json:"inStock"`
	BatchIDs         []string           `json:"batchIds"`
	Certifications   CertificationFlags `json:"certifications"`
	TotalCO2Grams    int64              `json:"totalCo2Grams"`
	CreatedAt        string             `json:"createdAt"` // ISO 8601
	UpdatedAt        string             `json:"updatedAt"` // ISO 8601
}

// PrimaryMaterial returns the first listed material, or "" when none is listed
func (p Product) PrimaryMaterial() string {
	if len(p.Materials) == 0 {
		return ""
	}
	return p.Materials[0]
}
