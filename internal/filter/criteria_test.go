package filter

import (
	"testing"

	"catalog-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortMode("newest"))
	assert.Equal(t, SortPriceLow, ParseSortMode("price-low"))
	assert.Equal(t, SortPriceHigh, ParseSortMode(" price-high "))
	assert.Equal(t, SortNewest, ParseSortMode("alphabetical"))
	assert.Equal(t, SortNewest, ParseSortMode(""))
}

func TestCertificationTogglesToggle(t *testing.T) {
	var toggles CertificationToggles

	toggles, ok := toggles.Toggle(model.FlagOrganic)
	assert.True(t, ok)
	assert.True(t, toggles.Organic)
	assert.True(t, toggles.Any())

	toggles, ok = toggles.Toggle(model.FlagLEED)
	assert.False(t, ok)
	assert.Equal(t, []model.CertificationFlag{model.FlagOrganic}, toggles.Active())

	toggles, _ = toggles.Toggle(model.FlagOrganic)
	assert.False(t, toggles.Any())
}

func TestCriteriaReplacementLeavesOtherFieldsUntouched(t *testing.T) {
	base := DefaultCriteria().
		WithSearch("cotton").
		WithCertificationToggled(model.FlagGOTS).
		WithCountryToggled("Japan").
		WithSort(SortPriceHigh)

	next := base.WithCountryToggled("India")
	assert.Equal(t, "cotton", next.SearchQuery)
	assert.True(t, next.Certifications.GOTS)
	assert.Equal(t, SortPriceHigh, next.SortBy)
	assert.Equal(t, []string{"India", "Japan"}, next.SelectedCountries())

	// earlier values never see later country changes
	assert.Equal(t, []string{"Japan"}, base.SelectedCountries())

	next = next.WithCountryToggled("Japan")
	assert.Equal(t, []string{"India"}, next.SelectedCountries())
}

func TestCriteriaWithSortFallsBack(t *testing.T) {
	c := DefaultCriteria().WithSort(SortMode("bogus"))
	assert.Equal(t, SortNewest, c.SortBy)
}

func TestCriteriaReset(t *testing.T) {
	c := DefaultCriteria().
		WithSearch("linen").
		WithCertificationToggled(model.FlagBCI).
		WithCountryToggled("Belgium").
		WithSort(SortPriceLow).
		Reset()

	assert.Equal(t, DefaultCriteria(), c)
	assert.Equal(t, 0, ActiveFilterCount(c))
}

func TestHasSearchIgnoresWhitespace(t *testing.T) {
	assert.False(t, DefaultCriteria().WithSearch("   \t").HasSearch())
	assert.True(t, DefaultCriteria().WithSearch(" a ").HasSearch())
}
