// Package filter applies structured criteria to an in-memory company list.
// Groups are ANDed together; membership inside a group is an OR. Missing
// record fields resolve to neutral values (0, empty set, "") so filtering
// excludes rather than fails.
package filter

import (
	"sort"

	"github.com/batchlens/batchlens/models"
)

// Criteria is the structured (non-text) filter state. An empty group means
// "no constraint"; a nil TeamSize means the range is unconstrained (an
// explicit [0, 0] range is a real constraint that only zero-sized teams
// pass).
type Criteria struct {
	Categories    []string   `json:"categories" yaml:"categories"`
	FundingRounds []string   `json:"fundingRounds" yaml:"fundingRounds"`
	TeamSize      *SizeRange `json:"teamSizeRange,omitempty" yaml:"teamSizeRange,omitempty"`
	Tags          []string   `json:"tags" yaml:"tags"`
}

// SizeRange is an inclusive [Min, Max] employee-count range.
type SizeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// normalized returns the range with Min <= Max. An inverted range is
// corrected by swapping rather than rejected.
func (r SizeRange) normalized() SizeRange {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// Contains reports whether n falls inside the inclusive range.
func (r SizeRange) Contains(n int) bool {
	r = r.normalized()
	return n >= r.Min && n <= r.Max
}

// IsZero reports whether the criteria impose no constraints at all.
func (c Criteria) IsZero() bool {
	return len(c.Categories) == 0 && len(c.FundingRounds) == 0 &&
		c.TeamSize == nil && len(c.Tags) == 0
}

// Apply returns the companies matching every criteria group, preserving the
// input order.
func Apply(companies []models.Company, c Criteria) []models.Company {
	if c.IsZero() {
		return companies
	}

	matched := make([]models.Company, 0, len(companies))
	for _, company := range companies {
		if Matches(&company, c) {
			matched = append(matched, company)
		}
	}
	return matched
}

// Matches reports whether a single company passes all criteria groups.
func Matches(company *models.Company, c Criteria) bool {
	if len(c.Categories) > 0 && !contains(c.Categories, company.Category) {
		return false
	}

	// A record with no funding only matches if "" is explicitly accepted.
	if len(c.FundingRounds) > 0 && !contains(c.FundingRounds, company.FundingRound()) {
		return false
	}

	if c.TeamSize != nil && !c.TeamSize.Contains(company.EmployeeCount()) {
		return false
	}

	if len(c.Tags) > 0 && !intersects(c.Tags, company.Tags) {
		return false
	}

	return true
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// intersects reports whether the two tag sets share at least one element.
// Intersection, not subset: one shared tag is enough.
func intersects(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

// UniqueCategories returns the sorted set of categories present.
func UniqueCategories(companies []models.Company) []string {
	seen := make(map[string]bool)
	for _, c := range companies {
		if c.Category != "" {
			seen[c.Category] = true
		}
	}
	return sortedKeys(seen)
}

// UniqueFundingRounds returns the sorted set of funding round labels present.
// Records without funding contribute nothing.
func UniqueFundingRounds(companies []models.Company) []string {
	seen := make(map[string]bool)
	for _, c := range companies {
		if round := c.FundingRound(); round != "" {
			seen[round] = true
		}
	}
	return sortedKeys(seen)
}

// UniqueTags returns the sorted set of tags across all companies.
func UniqueTags(companies []models.Company) []string {
	seen := make(map[string]bool)
	for _, c := range companies {
		for _, tag := range c.Tags {
			if tag != "" {
				seen[tag] = true
			}
		}
	}
	return sortedKeys(seen)
}

// TeamSizeBounds returns the observed [min, max] employee counts, ignoring
// records with no count. Defaults to [0, 100] when nothing is known.
func TeamSizeBounds(companies []models.Company) SizeRange {
	low, high := 0, 0
	found := false
	for _, c := range companies {
		n := c.EmployeeCount()
		if n <= 0 {
			continue
		}
		if !found || n < low {
			low = n
		}
		if n > high {
			high = n
		}
		found = true
	}
	if !found {
		return SizeRange{Min: 0, Max: 100}
	}
	return SizeRange{Min: low, Max: high}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
