package filter

import "catalog-service/internal/model"

// Session owns one user's filter criteria. It is not safe for concurrent
// use; the resolver it reads from may be shared.
type Session struct {
	resolver BatchResolver
	criteria Criteria
}

// NewSession starts a session with default criteria
func NewSession(resolver BatchResolver) *Session {
	return &Session{
		resolver: resolver,
		criteria: DefaultCriteria(),
	}
}

// Criteria returns a snapshot of the current criteria
func (s *Session) Criteria() Criteria {
	c := s.criteria
	c.Countries = c.Countries.Clone()
	return c
}

// SetSearch replaces the search text
func (s *Session) SetSearch(query string) {
	s.criteria = s.criteria.WithSearch(query)
}

// ToggleCertification flips one certification toggle and reports whether the
// flag is offered as a filter
func (s *Session) ToggleCertification(flag model.CertificationFlag) bool {
	if _, ok := s.criteria.Certifications.Toggle(flag); !ok {
		return false
	}
	s.criteria = s.criteria.WithCertificationToggled(flag)
	return true
}

// ToggleCountry adds or removes a country from the selection
func (s *Session) ToggleCountry(country string) {
	s.criteria = s.criteria.WithCountryToggled(country)
}

// SetSort replaces the sort mode
func (s *Session) SetSort(mode SortMode) {
	s.criteria = s.criteria.WithSort(mode)
}

// Reset restores every criterion to its default in one step
func (s *Session) Reset() {
	s.criteria = s.criteria.Reset()
}

// ActiveFilterCount counts the criteria categories currently in use
func (s *Session) ActiveFilterCount() int {
	return ActiveFilterCount(s.criteria)
}

// View derives the filtered and sorted view of products under the current criteria
func (s *Session) View(products []model.Product) View {
	return Derive(s.resolver, products, s.Criteria())
}
