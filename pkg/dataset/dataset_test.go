package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
	"companies": [
		{"id": "c1", "name": "Mastra", "category": "AI", "tags": ["AI"],
		 "founders": [{"name": "Sam Bhagwat"}],
		 "vcReport": {"overallScore": 8.5, "traction": {"rating": "9/10"}}},
		{"id": "c2", "name": "Forge", "category": "DevTools", "tags": []},
		{"id": "c2", "name": "Forge Duplicate"},
		{"name": "No ID"}
	]
}`

func writeTempDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "companies.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	loader := NewLoader(nil)

	companies, err := loader.Load(context.Background(), writeTempDataset(t, sampleDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Duplicate id and id-less record are dropped, first occurrence wins.
	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}
	if companies[0].ID != "c1" || companies[1].ID != "c2" {
		t.Errorf("dataset order not preserved: %s, %s", companies[0].ID, companies[1].ID)
	}
	if companies[1].Name != "Forge" {
		t.Errorf("duplicate id should keep the first record, got %s", companies[1].Name)
	}
	if got := companies[0].OverallScore(); got != 8.5 {
		t.Errorf("overall score = %v, want 8.5", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(nil)

	companies, err := loader.Load(context.Background(), "/does/not/exist.json")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if companies == nil || len(companies) != 0 {
		t.Errorf("failure must yield an empty (non-nil) list, got %v", companies)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	loader := NewLoader(nil)

	companies, err := loader.Load(context.Background(), writeTempDataset(t, "{nope"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if len(companies) != 0 {
		t.Errorf("parse failure must yield an empty list, got %d", len(companies))
	}
}

func TestLoadMissingCompaniesKey(t *testing.T) {
	loader := NewLoader(nil)

	companies, err := loader.Load(context.Background(), writeTempDataset(t, `{"other": 1}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("missing companies key should load as empty, got %d", len(companies))
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	loader := NewLoader(nil)
	companies, err := loader.Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(companies) != 2 {
		t.Errorf("got %d companies, want 2", len(companies))
	}
}

func TestLoadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := NewLoader(nil)
	companies, err := loader.Load(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected an error for HTTP 500")
	}
	if len(companies) != 0 {
		t.Errorf("failure must yield an empty list, got %d", len(companies))
	}
}

func TestByID(t *testing.T) {
	loader := NewLoader(nil)
	companies, err := loader.Load(context.Background(), writeTempDataset(t, sampleDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c := ByID(companies, "c1"); c == nil || c.Name != "Mastra" {
		t.Errorf("ByID(c1) = %v", c)
	}
	if c := ByID(companies, "zzz"); c != nil {
		t.Errorf("ByID(zzz) = %v, want nil", c)
	}
}
