// Package search builds a weighted multi-field fuzzy index over a company
// list. Matching is approximate (typo tolerant) via sahilm/fuzzy; per-field
// scores are combined with fixed weights to rank results.
package search

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/batchlens/batchlens/models"
)

// DefaultThreshold is the default matching strictness (0 = strictest,
// 1 = laxest), mirroring the knob exposed in config.
const DefaultThreshold = 0.3

// MinQueryLength is the shortest query that can match anything. Shorter
// queries return no results to avoid noise matches.
const MinQueryLength = 2

// FieldWeight pairs a searchable field with its contribution to ranking.
type FieldWeight struct {
	Name   string
	Weight float64
	Text   func(*models.Company) string
}

// Weights is the documented per-field weight table. Name dominates; category
// and tags contribute least. Founder names are pulled up from the nested
// founder list.
var Weights = []FieldWeight{
	{Name: "name", Weight: 0.40, Text: func(c *models.Company) string { return c.Name }},
	{Name: "tagline", Weight: 0.30, Text: func(c *models.Company) string { return c.Tagline }},
	{Name: "description", Weight: 0.20, Text: func(c *models.Company) string { return c.Description }},
	{Name: "category", Weight: 0.10, Text: func(c *models.Company) string { return c.Category }},
	{Name: "tags", Weight: 0.10, Text: func(c *models.Company) string { return strings.Join(c.Tags, " ") }},
	{Name: "founders", Weight: 0.20, Text: founderNames},
}

func founderNames(c *models.Company) string {
	names := make([]string, 0, len(c.Founders))
	for _, f := range c.Founders {
		names = append(names, f.Name)
	}
	return strings.Join(names, " ")
}

// Index is an immutable fuzzy index over one dataset snapshot. Rebuild it
// whenever the snapshot changes; there is no incremental update.
type Index struct {
	companies []models.Company
	fields    [][]string // per weight entry, the extracted text per company
	threshold float64
}

// NewIndex builds an index over the given companies. A negative threshold
// selects DefaultThreshold.
func NewIndex(companies []models.Company, threshold float64) *Index {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	if threshold > 1 {
		threshold = 1
	}

	fields := make([][]string, len(Weights))
	for i, fw := range Weights {
		texts := make([]string, len(companies))
		for j := range companies {
			texts[j] = fw.Text(&companies[j])
		}
		fields[i] = texts
	}

	return &Index{
		companies: companies,
		fields:    fields,
		threshold: threshold,
	}
}

// fieldSource adapts one extracted field column to fuzzy.Source.
type fieldSource []string

func (s fieldSource) String(i int) string { return s[i] }
func (s fieldSource) Len() int            { return len(s) }

// Search returns companies ranked most-relevant first. An empty or
// too-short query returns an empty result; callers wanting "everything"
// must not call Search at all.
func (ix *Index) Search(query string) []models.Company {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	floor := ix.scoreFloor()
	combined := make(map[int]float64)

	for i, fw := range Weights {
		for _, m := range fuzzy.FindFrom(query, fieldSource(ix.fields[i])) {
			if m.Score < floor {
				continue
			}
			// Shift by the floor so a barely-acceptable match still adds a
			// positive weighted contribution.
			combined[m.Index] += fw.Weight * float64(m.Score-floor+1)
		}
	}

	order := make([]int, 0, len(combined))
	for idx := range combined {
		order = append(order, idx)
	}
	sort.SliceStable(order, func(a, b int) bool {
		if combined[order[a]] != combined[order[b]] {
			return combined[order[a]] > combined[order[b]]
		}
		return order[a] < order[b] // dataset order breaks ties
	})

	results := make([]models.Company, len(order))
	for i, idx := range order {
		results[i] = ix.companies[idx]
	}
	return results
}

// scoreFloor converts the 0..1 strictness threshold into a minimum raw
// match score. fuzzy scores penalize unmatched letters, so scattered
// accidental matches in long fields go negative; a low threshold keeps the
// floor at 0 and rejects them outright.
func (ix *Index) scoreFloor() int {
	return -int(math.Round(ix.threshold * 10))
}
