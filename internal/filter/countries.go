package filter

import (
	"encoding/json"
	"sort"
)

// CountrySet is a set of country names. The zero value is an empty set that
// must be initialised with Add or Clone before writing.
type CountrySet map[string]struct{}

// NewCountrySet builds a set from the given names
func NewCountrySet(countries ...string) CountrySet {
	s := make(CountrySet, len(countries))
	for _, c := range countries {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a country
func (s CountrySet) Add(country string) { s[country] = struct{}{} }

// Remove deletes a country
func (s CountrySet) Remove(country string) { delete(s, country) }

// Contains reports membership
func (s CountrySet) Contains(country string) bool {
	_, ok := s[country]
	return ok
}

// Toggle adds the country if absent and removes it if present
func (s CountrySet) Toggle(country string) {
	if s.Contains(country) {
		s.Remove(country)
		return
	}
	s.Add(country)
}

// Len returns the number of countries
func (s CountrySet) Len() int { return len(s) }

// Clone returns an independent copy; cloning nil yields an empty set
func (s CountrySet) Clone() CountrySet {
	out := make(CountrySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Sorted lists the countries in ascending byte order
func (s CountrySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Intersects reports whether any of the given countries is in the set
func (s CountrySet) Intersects(countries []string) bool {
	for _, c := range countries {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the set as a sorted array
func (s CountrySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of country names
func (s *CountrySet) UnmarshalJSON(data []byte) error {
	var countries []string
	if err := json.Unmarshal(data, &countries); err != nil {
		return err
	}
	*s = NewCountrySet(countries...)
	return nil
}
