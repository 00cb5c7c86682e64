package filter

import (
	"slices"
	"sort"
	"time"

	"catalog-service/internal/catalog"
	"catalog-service/internal/model"
)

// BatchResolver resolves the batches a product was produced in
type BatchResolver interface {
	FindBatchesForProduct(sku string) []model.Batch
}

// View is the derived, presentation-ready result of applying criteria to a
// product list
type View struct {
	Products          []model.Product `json:"products"`
	Countries         []string        `json:"countries"`
	ActiveFilterCount int             `json:"activeFilterCount"`
	Criteria          Criteria        `json:"criteria"`
}

// Derive filters and sorts the products and computes the facets. It holds no
// state, so the same inputs always give the same view.
func Derive(resolver BatchResolver, products []model.Product, c Criteria) View {
	return View{
		Products:          Sort(Filter(resolver, products, c), c.SortBy),
		Countries:         DistinctOriginCountries(resolver, products),
		ActiveFilterCount: ActiveFilterCount(c),
		Criteria:          c,
	}
}

// Filter applies the search, certification and country predicates in turn.
// Empty criteria impose no constraint. The input slice is never modified.
func Filter(resolver BatchResolver, products []model.Product, c Criteria) []model.Product {
	result := slices.Clone(products)
	if result == nil {
		result = []model.Product{}
	}

	if c.HasSearch() {
		query := catalog.FoldText(c.SearchQuery)
		result = slices.DeleteFunc(result, func(p model.Product) bool {
			fields := append([]string{p.Title, p.Description, p.Category}, p.Materials...)
			return !catalog.ContainsText(query, fields...)
		})
	}

	if active := c.Certifications.Active(); len(active) > 0 {
		result = slices.DeleteFunc(result, func(p model.Product) bool {
			for _, flag := range active {
				if !p.Certifications.Has(flag) {
					return true
				}
			}
			return false
		})
	}

	if c.Countries.Len() > 0 {
		result = slices.DeleteFunc(result, func(p model.Product) bool {
			return !c.Countries.Intersects(originCountries(resolver, p.SKU))
		})
	}

	return result
}

// Sort returns a stably sorted copy of products. Unknown modes sort newest
// first.
func Sort(products []model.Product, mode SortMode) []model.Product {
	result := slices.Clone(products)
	if result == nil {
		result = []model.Product{}
	}

	switch ParseSortMode(string(mode)) {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	default:
		type entry struct {
			product model.Product
			created time.Time
			valid   bool
		}
		entries := make([]entry, len(result))
		for i, p := range result {
			t, ok := ParseTimestamp(p.CreatedAt)
			entries[i] = entry{product: p, created: t, valid: ok}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			// unparsable timestamps sink below every parsable one
			if entries[i].valid != entries[j].valid {
				return entries[i].valid
			}
			return entries[i].created.After(entries[j].created)
		})
		for i, e := range entries {
			result[i] = e.product
		}
	}
	return result
}

// DistinctOriginCountries unions the stage countries of every product's
// batches and returns them in ascending byte order
func DistinctOriginCountries(resolver BatchResolver, products []model.Product) []string {
	set := NewCountrySet()
	for _, p := range products {
		for _, c := range originCountries(resolver, p.SKU) {
			set.Add(c)
		}
	}
	return set.Sorted()
}

// ActiveFilterCount counts the criteria categories in use: search,
// certifications, countries and a non-default sort. Range 0 to 4.
func ActiveFilterCount(c Criteria) int {
	count := 0
	if c.HasSearch() {
		count++
	}
	if c.Certifications.Any() {
		count++
	}
	if c.Countries.Len() > 0 {
		count++
	}
	if ParseSortMode(string(c.SortBy)) != DefaultSort {
		count++
	}
	return count
}

func originCountries(resolver BatchResolver, sku string) []string {
	var out []string
	for _, b := range resolver.FindBatchesForProduct(sku) {
		for _, stage := range b.ProvenanceStages {
			out = append(out, stage.GeoLocation.Country)
		}
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp reads an ISO 8601 instant or calendar date
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
