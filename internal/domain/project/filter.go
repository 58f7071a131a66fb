package project

import "strings"

// FilterCriteria narrows a catalog. A nil facet matches every record,
// an empty Search matches every record.
type FilterCriteria struct {
	Search      string
	Category    *Category
	Status      *Status
	BillingType *BillingType
}

// IsZero reports whether the criteria place no constraint at all.
func (c FilterCriteria) IsZero() bool {
	return c.Search == "" && c.Category == nil && c.Status == nil && c.BillingType == nil
}

// Matches reports whether a single record satisfies every facet.
func (c FilterCriteria) Matches(p Project) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Client), needle) {
			return false
		}
	}
	if c.Category != nil && p.Category != *c.Category {
		return false
	}
	if c.Status != nil && p.Status != *c.Status {
		return false
	}
	if c.BillingType != nil && p.BillingType != *c.BillingType {
		return false
	}
	return true
}

// Filter returns the records matching the criteria, preserving input
// order. It is pure: the input slice is never reordered or mutated.
// Unconstrained criteria return the input unchanged.
func Filter(records []Project, c FilterCriteria) []Project {
	if c.IsZero() {
		return records
	}
	matched := make([]Project, 0, len(records))
	for _, p := range records {
		if c.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
