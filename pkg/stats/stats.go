// Package stats computes the dataset aggregations shown on the dashboard's
// summary cards and category chart.
package stats

import (
	"sort"

	"github.com/batchlens/batchlens/models"
)

// CategoryCount is one bar of the category breakdown.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// FundingStats summarizes how many companies disclose funding and how the
// known rounds are distributed.
type FundingStats struct {
	TotalWithFunding int            `json:"total_with_funding" yaml:"total_with_funding"`
	ByRound          map[string]int `json:"by_round" yaml:"by_round"`
}

// Summary is the top-level stats payload.
type Summary struct {
	TotalCompanies int             `json:"total_companies" yaml:"total_companies"`
	Categories     []CategoryCount `json:"categories" yaml:"categories"`
	Funding        FundingStats    `json:"funding" yaml:"funding"`
	AverageScore   float64         `json:"average_score" yaml:"average_score"`
	ScoredCount    int             `json:"scored_count" yaml:"scored_count"`
}

// CategoryCounts tallies companies per category, largest first; equal counts
// order alphabetically so output is deterministic.
func CategoryCounts(companies []models.Company) []CategoryCount {
	counts := make(map[string]int)
	for i := range companies {
		counts[companies[i].Category]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// Funding counts companies with a disclosed funding amount and buckets them
// by round label; a missing round label buckets as "Unknown".
func Funding(companies []models.Company) FundingStats {
	stats := FundingStats{ByRound: make(map[string]int)}
	for i := range companies {
		f := companies[i].Funding
		if f == nil || f.Amount == "" {
			continue
		}
		stats.TotalWithFunding++
		round := f.Round
		if round == "" {
			round = "Unknown"
		}
		stats.ByRound[round]++
	}
	return stats
}

// Summarize builds the full stats payload for one snapshot.
func Summarize(companies []models.Company) Summary {
	var scoreSum float64
	scored := 0
	for i := range companies {
		if s := companies[i].OverallScore(); s > 0 {
			scoreSum += s
			scored++
		}
	}

	avg := 0.0
	if scored > 0 {
		avg = scoreSum / float64(scored)
	}

	return Summary{
		TotalCompanies: len(companies),
		Categories:     CategoryCounts(companies),
		Funding:        Funding(companies),
		AverageScore:   avg,
		ScoredCount:    scored,
	}
}
