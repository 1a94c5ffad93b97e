// Package models defines data structures for the company dataset and the
// query API surface.
package models

// Company represents one startup record in a batch dataset.
type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	SubCategory  string    `json:"subCategory,omitempty"`
	Website      string    `json:"website,omitempty"`
	FoundingYear int       `json:"foundingYear,omitempty"`
	Founders     []Founder `json:"founders"`
	Funding      *Funding  `json:"funding,omitempty"`
	Metrics      *Metrics  `json:"metrics,omitempty"`
	Links        *Links    `json:"links,omitempty"`
	Tags         []string  `json:"tags"`
	Batch        string    `json:"ycBatch,omitempty"`
	LastUpdated  string    `json:"lastUpdated,omitempty"`

	// Generated analysis payloads. The query engine treats these as opaque
	// except for VCReport.OverallScore.
	VCScreening *Screening `json:"vcScreening,omitempty"`
	VCReport    *VCReport  `json:"vcReport,omitempty"`
}

// Founder is one member of the founding team.
type Founder struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Funding describes the most recent known funding event.
type Funding struct {
	Round     string   `json:"round,omitempty"` // Pre-Seed, Seed, Series A, ...
	Amount    string   `json:"amount,omitempty"`
	Investors []string `json:"investors,omitempty"`
	Date      string   `json:"date,omitempty"`
}

// Metrics holds loosely sourced operational numbers.
type Metrics struct {
	Employees      int    `json:"employees,omitempty"`
	Revenue        string `json:"revenue,omitempty"`
	WebsiteTraffic string `json:"websiteTraffic,omitempty"`
}

// Links collects external profile URLs.
type Links struct {
	LinkedIn   string `json:"linkedin,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	Crunchbase string `json:"crunchbase,omitempty"`
	GitHub     string `json:"github,omitempty"`
}

// OverallScore returns the report's 1-10 overall score, or 0 when no report
// exists. Absence of data is never an error, it just ranks last.
func (c *Company) OverallScore() float64 {
	if c.VCReport == nil {
		return 0
	}
	return c.VCReport.OverallScore
}

// EmployeeCount returns the employee count, or 0 when metrics are missing.
func (c *Company) EmployeeCount() int {
	if c.Metrics == nil {
		return 0
	}
	return c.Metrics.Employees
}

// FundingRound returns the funding round label, or "" when unknown.
func (c *Company) FundingRound() string {
	if c.Funding == nil {
		return ""
	}
	return c.Funding.Round
}
