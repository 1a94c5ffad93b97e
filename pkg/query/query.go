// Package query composes fuzzy search and structured filtering over one
// dataset snapshot, then sorts and paginates the result for display.
package query

import (
	"strings"

	"github.com/batchlens/batchlens/models"
	"github.com/batchlens/batchlens/pkg/filter"
	"github.com/batchlens/batchlens/pkg/search"
)

// Engine owns a loaded snapshot and the search index built over it. The
// snapshot is immutable for the engine's lifetime; switching batches means
// building a new engine.
type Engine struct {
	companies []models.Company
	index     *search.Index
}

// NewEngine builds an engine (and its search index) over a snapshot.
// threshold is the search strictness knob; pass a negative value for the
// default.
func NewEngine(companies []models.Company, threshold float64) *Engine {
	return &Engine{
		companies: companies,
		index:     search.NewIndex(companies, threshold),
	}
}

// Companies returns the full snapshot in dataset order.
func (e *Engine) Companies() []models.Company {
	return e.companies
}

// Total returns the snapshot size.
func (e *Engine) Total() int {
	return len(e.companies)
}

// Run narrows by fuzzy search first (so relevance ranking survives), then
// applies the structured criteria. With no search text the criteria apply
// to the whole snapshot in dataset order.
func (e *Engine) Run(searchText string, c filter.Criteria) []models.Company {
	narrowed := e.companies
	if strings.TrimSpace(searchText) != "" {
		narrowed = e.index.Search(searchText)
	}
	return filter.Apply(narrowed, c)
}

// ByID returns the company with the given id, or nil.
func (e *Engine) ByID(id string) *models.Company {
	for i := range e.companies {
		if e.companies[i].ID == id {
			return &e.companies[i]
		}
	}
	return nil
}
