// Package dataset loads a batch snapshot (a JSON document with a top-level
// "companies" array) from a local file or an HTTP(S) URL. Loading replaces
// the whole snapshot; there is no incremental merge.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/batchlens/batchlens/models"
)

// document is the on-disk dataset shape.
type document struct {
	Companies []models.Company `json:"companies"`
}

// Loader fetches and decodes batch snapshots.
type Loader struct {
	client *http.Client
	log    *slog.Logger
}

// NewLoader builds a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		client: &http.Client{Timeout: 30 * time.Second},
		log:    logger,
	}
}

// Load reads a snapshot from source (file path or http/https URL). On any
// failure it returns an empty list plus the error, so callers can render a
// "no data" state instead of crashing.
func (l *Loader) Load(ctx context.Context, source string) ([]models.Company, error) {
	raw, err := l.read(ctx, source)
	if err != nil {
		return []models.Company{}, fmt.Errorf("failed to load dataset %s: %w", source, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []models.Company{}, fmt.Errorf("failed to parse dataset %s: %w", source, err)
	}
	if doc.Companies == nil {
		return []models.Company{}, nil
	}

	return l.sanitize(doc.Companies), nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetch(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch dataset, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// sanitize drops records that cannot be addressed (no id) and duplicate ids,
// keeping the first occurrence. Dataset order is otherwise preserved; it is
// the tie-break order for stable sorts downstream.
func (l *Loader) sanitize(companies []models.Company) []models.Company {
	seen := make(map[string]bool, len(companies))
	clean := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		if c.ID == "" {
			l.log.Warn("dropping record without id", "name", c.Name)
			continue
		}
		if seen[c.ID] {
			l.log.Warn("dropping duplicate record", "id", c.ID, "name", c.Name)
			continue
		}
		seen[c.ID] = true
		clean = append(clean, c)
	}
	return clean
}

// ByID returns the company with the given id from a snapshot, or nil.
func ByID(companies []models.Company, id string) *models.Company {
	for i := range companies {
		if companies[i].ID == id {
			return &companies[i]
		}
	}
	return nil
}
