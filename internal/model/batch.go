package model

// ProvenanceStage is one step of a batch's supply chain. Stages are stored
// upstream first.
type ProvenanceStage struct {
	StageName        string             `json:"stageName"`
	StageDescription string             `json:"stageDescription"`
	SupplierID       string             `json:"supplierId"`
	GeoLocation      GeoLocation        `json:"geoLocation"`
	Timestamp        string             `json:"timestamp"` // ISO 8601
	Certifications   CertificationFlags `json:"certifications"`
	CO2Grams         int64              `json:"co2Grams"`
	MediaURLs        []string           `json:"mediaUrls"`
}

// Batch represents a production run and its provenance chain
type Batch struct {
	BatchID           string            `json:"batchId"`
	BatchName         string            `json:"batchName"`
	ProductionDate    string            `json:"productionDate"` // ISO 8601
	Quantity          int               `json:"quantity"`
	ProvenanceStages  []ProvenanceStage `json:"provenanceStages"`
	TotalCO2Grams     int64             `json:"totalCo2Grams"`
	VerificationToken string            `json:"verificationToken,omitempty"`
}

// StageCO2Grams sums the CO2 recorded on the batch's stages. TotalCO2Grams
// remains the authoritative figure.
func (b Batch) StageCO2Grams() int64 {
	var sum int64
	for _, s := range b.ProvenanceStages {
		sum += s.CO2Grams
	}
	return sum
}
