package query

import (
	"sort"
	"strings"

	"github.com/batchlens/batchlens/models"
)

// SortKey selects the column a result list is ordered by.
type SortKey string

const (
	SortByScore        SortKey = "score" // default: vcReport overall score
	SortByName         SortKey = "name"
	SortByCategory     SortKey = "category"
	SortByEmployees    SortKey = "employees"
	SortByFoundingYear SortKey = "foundingYear"
	SortByFundingRound SortKey = "fundingRound"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultPageSize matches the dashboard's table page size.
const DefaultPageSize = 20

// Page is one slice of a sorted result list.
type Page struct {
	Companies  []models.Company `json:"companies" yaml:"companies"`
	PageIndex  int              `json:"page_index" yaml:"page_index"`
	PageSize   int              `json:"page_size" yaml:"page_size"`
	PageCount  int              `json:"page_count" yaml:"page_count"`
	TotalCount int              `json:"total_count" yaml:"total_count"`
}

// ParseSortKey maps a user-supplied column name to a SortKey, falling back
// to the score default for anything unknown.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortByName, SortByCategory, SortByEmployees, SortByFoundingYear, SortByFundingRound, SortByScore:
		return SortKey(strings.TrimSpace(s))
	default:
		return SortByScore
	}
}

// ParseDirection maps a user-supplied direction to asc/desc. Unknown input
// gets the key's natural default: descending for score, ascending otherwise.
func ParseDirection(s string, key SortKey) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending
	case Descending:
		return Descending
	}
	if key == SortByScore {
		return Descending
	}
	return Ascending
}

// Sort returns a stably sorted copy of companies. Ties keep their relative
// input order, which for an unsearched list is dataset order. Missing
// values sort as their neutral defaults (score 0, employees 0, empty
// strings), never as errors.
func Sort(companies []models.Company, key SortKey, dir Direction) []models.Company {
	sorted := make([]models.Company, len(companies))
	copy(sorted, companies)

	less := lessFunc(key)
	if dir == Descending {
		inner := less
		less = func(a, b *models.Company) bool { return inner(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

func lessFunc(key SortKey) func(a, b *models.Company) bool {
	switch key {
	case SortByName:
		return func(a, b *models.Company) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortByCategory:
		return func(a, b *models.Company) bool { return a.Category < b.Category }
	case SortByEmployees:
		return func(a, b *models.Company) bool { return a.EmployeeCount() < b.EmployeeCount() }
	case SortByFoundingYear:
		return func(a, b *models.Company) bool { return a.FoundingYear < b.FoundingYear }
	case SortByFundingRound:
		return func(a, b *models.Company) bool { return a.FundingRound() < b.FundingRound() }
	default: // SortByScore
		return func(a, b *models.Company) bool { return a.OverallScore() < b.OverallScore() }
	}
}

// SortAndPaginate sorts the result list and slices out one page. Invalid
// parameters clamp instead of failing: negative page index becomes 0, a
// non-positive page size becomes DefaultPageSize, and a page index past the
// end yields an empty page. An empty result still reports one page.
func SortAndPaginate(companies []models.Company, key SortKey, dir Direction, pageIndex, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageIndex < 0 {
		pageIndex = 0
	}

	sorted := Sort(companies, key, dir)
	total := len(sorted)

	// Guard the arithmetic against overflow: pageCount stays 1 whenever one
	// page holds everything, and start is only computed for an in-range
	// index, so neither product nor sum can wrap.
	pageCount := 1
	if total > pageSize {
		pageCount = (total + pageSize - 1) / pageSize
	}

	start := total
	if pageIndex < pageCount {
		start = pageIndex * pageSize
	}
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	return Page{
		Companies:  sorted[start:end],
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		PageCount:  pageCount,
		TotalCount: total,
	}
}
