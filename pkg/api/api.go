// Package api exposes the query engine over HTTP as JSON. It is the same
// contract the CLI uses; any external consumer (a chat backend, the web UI)
// should go through it rather than re-filtering the dataset ad hoc.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/batchlens/batchlens/models"
	"github.com/batchlens/batchlens/pkg/db"
	"github.com/batchlens/batchlens/pkg/export"
	"github.com/batchlens/batchlens/pkg/filter"
	"github.com/batchlens/batchlens/pkg/query"
	"github.com/batchlens/batchlens/pkg/stats"
)

// Server serves one batch snapshot. The engine is immutable, so handlers
// need no locking; only the bookmark store mutates, and SQLite handles that.
type Server struct {
	batch    string
	engine   *query.Engine
	store    *db.DB
	pageSize int
	log      *slog.Logger
}

// NewServer wires a server over a loaded engine. store may be nil, in which
// case bookmark endpoints report unavailable.
func NewServer(batch string, engine *query.Engine, store *db.DB, pageSize int, logger *slog.Logger) *Server {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		batch:    batch,
		engine:   engine,
		store:    store,
		pageSize: pageSize,
		log:      logger,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/companies", s.Companies)
	mux.HandleFunc("/companies/", s.Company)
	mux.HandleFunc("/facets", s.Facets)
	mux.HandleFunc("/stats", s.Stats)
	mux.HandleFunc("/export.csv", s.Export)
	mux.HandleFunc("/bookmarks", s.Bookmarks)
	mux.HandleFunc("/bookmarks/toggle", s.ToggleBookmark)
	mux.HandleFunc("/health", s.Health)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, op, errType, message string) {
	writeJSON(w, status, models.NewErrorResponse(op, errType, message))
}

// criteriaFromQuery maps URL query params onto filter criteria. Malformed
// numbers clamp to the neutral value rather than erroring.
func criteriaFromQuery(r *http.Request) filter.Criteria {
	q := r.URL.Query()
	criteria := filter.Criteria{
		Categories:    splitParam(q.Get("categories")),
		FundingRounds: splitParam(q.Get("rounds")),
		Tags:          splitParam(q.Get("tags")),
	}

	if q.Get("team-min") != "" || q.Get("team-max") != "" {
		min := atoiOr(q.Get("team-min"), 0)
		max := atoiOr(q.Get("team-max"), math.MaxInt32)
		criteria.TeamSize = &filter.SizeRange{Min: min, Max: max}
	}
	return criteria
}

func splitParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// Companies runs the full query pipeline and returns one page.
func (s *Server) Companies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "query", "bad_method", "GET only")
		return
	}

	q := r.URL.Query()
	result := s.engine.Run(q.Get("q"), criteriaFromQuery(r))

	key := query.ParseSortKey(q.Get("sort"))
	dir := query.ParseDirection(q.Get("dir"), key)
	pageSize := atoiOr(q.Get("page-size"), s.pageSize)
	page := query.SortAndPaginate(result, key, dir, atoiOr(q.Get("page"), 0), pageSize)

	writeJSON(w, http.StatusOK, models.Response{
		Op:         "query",
		Batch:      s.batch,
		MatchCount: len(result),
		TotalCount: s.engine.Total(),
		Data:       page,
	})
}

// Company returns one record by id (path /companies/{id}).
func (s *Server) Company(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "get", "bad_method", "GET only")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/companies/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "get", "bad_request", "company id required")
		return
	}

	company := s.engine.ByID(id)
	if company == nil {
		writeError(w, http.StatusNotFound, "get", "not_found", "no company with id "+id)
		return
	}

	writeJSON(w, http.StatusOK, models.Response{
		Op:         "get",
		Batch:      s.batch,
		MatchCount: 1,
		TotalCount: s.engine.Total(),
		Data:       company,
	})
}

// facetsPayload mirrors the CLI facets output.
type facetsPayload struct {
	Categories    []string         `json:"categories"`
	FundingRounds []string         `json:"funding_rounds"`
	Tags          []string         `json:"tags"`
	TeamSize      filter.SizeRange `json:"team_size"`
}

func (s *Server) Facets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "facets", "bad_method", "GET only")
		return
	}

	companies := s.engine.Companies()
	writeJSON(w, http.StatusOK, models.Response{
		Op:         "facets",
		Batch:      s.batch,
		MatchCount: len(companies),
		TotalCount: len(companies),
		Data: facetsPayload{
			Categories:    filter.UniqueCategories(companies),
			FundingRounds: filter.UniqueFundingRounds(companies),
			Tags:          filter.UniqueTags(companies),
			TeamSize:      filter.TeamSizeBounds(companies),
		},
	})
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "stats", "bad_method", "GET only")
		return
	}

	summary := stats.Summarize(s.engine.Companies())
	writeJSON(w, http.StatusOK, models.Response{
		Op:         "stats",
		Batch:      s.batch,
		MatchCount: summary.TotalCompanies,
		TotalCount: summary.TotalCompanies,
		Data:       summary,
	})
}

// Export streams the filtered set as CSV.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "export", "bad_method", "GET only")
		return
	}

	q := r.URL.Query()
	result := s.engine.Run(q.Get("q"), criteriaFromQuery(r))

	key := query.ParseSortKey(q.Get("sort"))
	result = query.Sort(result, key, query.ParseDirection(q.Get("dir"), key))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-companies.csv", s.batch))
	if err := export.WriteCSV(w, result); err != nil {
		s.log.Error("csv export failed", "err", err)
	}
}

func (s *Server) Bookmarks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "bookmark-list", "bad_method", "GET only")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "bookmark-list", "no_store", "bookmark store not available")
		return
	}

	ids, err := s.store.ListBookmarks()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "bookmark-list", "store_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Op:         "bookmark-list",
		Batch:      s.batch,
		MatchCount: len(ids),
		TotalCount: len(ids),
		Data:       ids,
	})
}

// ToggleBookmark flips the bookmark for ?id=<company-id>.
func (s *Server) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "bookmark-toggle", "bad_method", "POST only")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "bookmark-toggle", "no_store", "bookmark store not available")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bookmark-toggle", "bad_request", "id query parameter is required")
		return
	}

	bookmarked, err := s.store.ToggleBookmark(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "bookmark-toggle", "store_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Op:   "bookmark-toggle",
		Data: map[string]interface{}{"id": id, "bookmarked": bookmarked},
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"batch":     s.batch,
		"companies": s.engine.Total(),
	})
}
