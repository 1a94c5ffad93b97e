package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/batchlens/batchlens/models"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	companies := []models.Company{
		{
			ID: "c1", Name: "Mastra", Tagline: "Agents, fast", // embedded comma
			Description:  "Framework for \"agent\" builders", // embedded quotes
			Category:     "AI",
			Website:      "https://mastra.ai",
			FoundingYear: 2024,
			Founders:     []models.Founder{{Name: "Sam Bhagwat"}, {Name: "Abhi Aiyer"}},
			Funding:      &models.Funding{Round: "Seed", Amount: "$2M"},
			Metrics:      &models.Metrics{Employees: 8},
			Tags:         []string{"AI", "DevTools"},
			Links:        &models.Links{LinkedIn: "https://linkedin.com/company/mastra"},
		},
		{
			ID: "c2", Name: "Helix",
			// everything else missing: must render as empty cells
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, companies); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(rows) != len(companies)+1 {
		t.Fatalf("got %d rows, want %d (header + records)", len(rows), len(companies)+1)
	}

	header := rows[0]
	if len(header) != len(Columns) {
		t.Fatalf("header has %d columns, want %d", len(header), len(Columns))
	}

	first := rows[1]
	if first[0] != "Mastra" {
		t.Errorf("Name = %q", first[0])
	}
	if first[1] != "Agents, fast" {
		t.Errorf("comma-bearing tagline did not round-trip: %q", first[1])
	}
	if first[2] != `Framework for "agent" builders` {
		t.Errorf("quoted description did not round-trip: %q", first[2])
	}
	if first[6] != "Sam Bhagwat, Abhi Aiyer" {
		t.Errorf("founders joined wrong: %q", first[6])
	}
	if first[9] != "8" {
		t.Errorf("employees = %q, want 8", first[9])
	}

	second := rows[2]
	for i, cell := range second {
		if Columns[i] == "Name" {
			continue
		}
		if cell != "" {
			t.Errorf("missing field %s rendered %q, want empty", Columns[i], cell)
		}
	}
}

func TestWriteCSVZeroRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV(nil) error = %v", err)
	}

	out := strings.TrimSpace(buf.String())
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("zero records produced %d lines, want header only", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name,") {
		t.Errorf("header = %q", lines[0])
	}
}
