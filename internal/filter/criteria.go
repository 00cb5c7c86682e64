package filter

import (
	"strings"

	"catalog-service/internal/model"
)

// SortMode selects the ordering of the derived product list
type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
)

// DefaultSort is the ordering used when none, or an unknown one, is selected
const DefaultSort = SortNewest

// ParseSortMode maps a raw value onto a SortMode, falling back to newest
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.TrimSpace(s)) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	default:
		return SortNewest
	}
}

// CertificationToggles holds the user's certification checkboxes. LEED is
// not offered as a filter.
type CertificationToggles struct {
	Organic     bool `json:"organic"`
	Fairtrade   bool `json:"fairtrade"`
	GOTS        bool `json:"gots"`
	GRI         bool `json:"gri"`
	BCI         bool `json:"bci"`
	CarbonTrust bool `json:"carbontrust"`
}

// ToggleableFlags lists the flags offered as filters, in display order
func ToggleableFlags() []model.CertificationFlag {
	return []model.CertificationFlag{
		model.FlagOrganic,
		model.FlagFairtrade,
		model.FlagGOTS,
		model.FlagGRI,
		model.FlagBCI,
		model.FlagCarbonTrust,
	}
}

func (t *CertificationToggles) field(flag model.CertificationFlag) *bool {
	switch flag {
	case model.FlagOrganic:
		return &t.Organic
	case model.FlagFairtrade:
		return &t.Fairtrade
	case model.FlagGOTS:
		return &t.GOTS
	case model.FlagGRI:
		return &t.GRI
	case model.FlagBCI:
		return &t.BCI
	case model.FlagCarbonTrust:
		return &t.CarbonTrust
	default:
		return nil
	}
}

// Toggle flips one flag. It returns the toggles unchanged and false when
// the flag is not offered as a filter.
func (t CertificationToggles) Toggle(flag model.CertificationFlag) (CertificationToggles, bool) {
	f := t.field(flag)
	if f == nil {
		return t, false
	}
	*f = !*f
	return t, true
}

// Active lists the toggled-on flags
func (t CertificationToggles) Active() []model.CertificationFlag {
	var out []model.CertificationFlag
	for _, flag := range ToggleableFlags() {
		if *t.field(flag) {
			out = append(out, flag)
		}
	}
	return out
}

// Any reports whether at least one flag is toggled on
func (t CertificationToggles) Any() bool {
	return len(t.Active()) > 0
}

// Criteria is the user's current filter selection
type Criteria struct {
	SearchQuery    string               `json:"searchQuery"`
	Certifications CertificationToggles `json:"certifications"`
	Countries      CountrySet           `json:"countries"`
	SortBy         SortMode             `json:"sortBy"`
}

// DefaultCriteria returns criteria that impose no constraint
func DefaultCriteria() Criteria {
	return Criteria{
		Countries: NewCountrySet(),
		SortBy:    DefaultSort,
	}
}

// WithSearch replaces the search text
func (c Criteria) WithSearch(query string) Criteria {
	c.Countries = c.Countries.Clone()
	c.SearchQuery = query
	return c
}

// WithCertificationToggled flips one certification toggle. Flags that are
// not offered as filters leave the criteria unchanged.
func (c Criteria) WithCertificationToggled(flag model.CertificationFlag) Criteria {
	c.Countries = c.Countries.Clone()
	c.Certifications, _ = c.Certifications.Toggle(flag)
	return c
}

// WithCountryToggled adds the country to the selection or removes it
func (c Criteria) WithCountryToggled(country string) Criteria {
	c.Countries = c.Countries.Clone()
	c.Countries.Toggle(country)
	return c
}

// WithSort replaces the sort mode; unknown modes become newest
func (c Criteria) WithSort(mode SortMode) Criteria {
	c.Countries = c.Countries.Clone()
	c.SortBy = ParseSortMode(string(mode))
	return c
}

// Reset returns the default criteria
func (c Criteria) Reset() Criteria {
	return DefaultCriteria()
}

// HasSearch reports whether the search text is non-blank
func (c Criteria) HasSearch() bool {
	return strings.TrimSpace(c.SearchQuery) != ""
}

// SelectedCountries lists the selected countries in ascending order
func (c Criteria) SelectedCountries() []string {
	return c.Countries.Sorted()
}
