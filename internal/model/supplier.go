package model

// Supplier represents a supply-chain partner referenced by provenance stages
type Supplier struct {
	SupplierID     string             `json:"supplierId"`
	SupplierName   string             `json:"supplierName"`
	Country        string             `json:"country"`
	Certifications CertificationFlags `json:"certifications"`
	GeoLocation    GeoLocation        `json:"geoLocation"`
	Description    string             `json:"description"`
	ContactEmail   string             `json:"contactEmail"`
	Website        string             `json:"website,omitempty"`
}
