package model

import "strings"

// CertificationFlag names one sustainability attestation
type CertificationFlag string

const (
	FlagOrganic     CertificationFlag = "organic"
	FlagFairtrade   CertificationFlag = "fairtrade"
	FlagGOTS        CertificationFlag = "gots"
	FlagGRI         CertificationFlag = "gri"
	FlagBCI         CertificationFlag = "bci"
	FlagLEED        CertificationFlag = "leed"
	FlagCarbonTrust CertificationFlag = "carbontrust"
)

var allFlags = []CertificationFlag{
	FlagOrganic,
	FlagFairtrade,
	FlagGOTS,
	FlagGRI,
	FlagBCI,
	FlagLEED,
	FlagCarbonTrust,
}

// AllCertificationFlags returns every known flag in declaration order
func AllCertificationFlags() []CertificationFlag {
	out := make([]CertificationFlag, len(allFlags))
	copy(out, allFlags)
	return out
}

// ParseCertificationFlag resolves a flag name, ignoring case and surrounding spaces
func ParseCertificationFlag(s string) (CertificationFlag, bool) {
	candidate := CertificationFlag(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range allFlags {
		if f == candidate {
			return f, true
		}
	}
	return "", false
}

// CertificationFlags is the set of attestations held by a product, supplier or stage.
// Flags are independent; no flag implies another.
type CertificationFlags struct {
	Organic     bool `json:"organic"`
	Fairtrade   bool `json:"fairtrade"`
	GOTS        bool `json:"gots"` // Global Organic Textile Standard
	GRI         bool `json:"gri"`  // Global Recycled Standard
	BCI         bool `json:"bci"`  // Better Cotton Initiative
	LEED        bool `json:"leed"`
	CarbonTrust bool `json:"carbontrust"`
}

// Has reports whether the named flag is set. Unknown flags are never set.
func (c CertificationFlags) Has(flag CertificationFlag) bool {
	switch flag {
	case FlagOrganic:
		return c.Organic
	case FlagFairtrade:
		return c.Fairtrade
	case FlagGOTS:
		return c.GOTS
	case FlagGRI:
		return c.GRI
	case FlagBCI:
		return c.BCI
	case FlagLEED:
		return c.LEED
	case FlagCarbonTrust:
		return c.CarbonTrust
	default:
		return false
	}
}

// Active lists the flags that are set, in declaration order
func (c CertificationFlags) Active() []CertificationFlag {
	var active []CertificationFlag
	for _, f := range allFlags {
		if c.Has(f) {
			active = append(active, f)
		}
	}
	return active
}
