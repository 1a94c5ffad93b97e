package filter

import (
	"reflect"
	"testing"

	"github.com/batchlens/batchlens/models"
)

func testCompanies() []models.Company {
	return []models.Company{
		{
			ID: "c1", Name: "Mastra", Category: "AI",
			Tags:    []string{"AI", "B2B"},
			Funding: &models.Funding{Round: "Seed", Amount: "$2M"},
			Metrics: &models.Metrics{Employees: 5},
		},
		{
			ID: "c2", Name: "Forge", Category: "DevTools",
			Tags:    []string{"B2B"},
			Funding: &models.Funding{Round: "Pre-Seed", Amount: "$500K"},
			Metrics: &models.Metrics{Employees: 2},
		},
		{
			ID: "c3", Name: "Helix Bio", Category: "Healthcare",
			Tags: []string{"Biotech"},
			// no funding, no metrics
		},
		{
			ID: "c4", Name: "Quanta", Category: "AI",
			Tags:    []string{"AI", "Infra"},
			Funding: &models.Funding{Round: "Seed", Amount: "$3M"},
			Metrics: &models.Metrics{Employees: 12},
		},
	}
}

func ids(companies []models.Company) []string {
	out := make([]string, len(companies))
	for i, c := range companies {
		out[i] = c.ID
	}
	return out
}

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	companies := testCompanies()
	got := Apply(companies, Criteria{})
	if !reflect.DeepEqual(ids(got), ids(companies)) {
		t.Errorf("empty criteria changed the list: got %v", ids(got))
	}
}

func TestApplyCategories(t *testing.T) {
	companies := testCompanies()

	tests := []struct {
		name       string
		categories []string
		want       []string
	}{
		{"single category", []string{"AI"}, []string{"c1", "c4"}},
		{"two categories", []string{"AI", "Healthcare"}, []string{"c1", "c3", "c4"}},
		{"unknown category", []string{"Fintech"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(companies, Criteria{Categories: tt.categories}))
			if !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// Every observed category's partition, concatenated, must reconstruct the
// full list exactly once per record.
func TestCategoryPartition(t *testing.T) {
	companies := testCompanies()

	seen := make(map[string]int)
	for _, cat := range UniqueCategories(companies) {
		for _, c := range Apply(companies, Criteria{Categories: []string{cat}}) {
			seen[c.ID]++
		}
	}

	if len(seen) != len(companies) {
		t.Fatalf("partition covered %d records, want %d", len(seen), len(companies))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("record %s appeared in %d partitions, want 1", id, n)
		}
	}
}

func TestApplyFundingRounds(t *testing.T) {
	companies := testCompanies()

	t.Run("round membership", func(t *testing.T) {
		got := ids(Apply(companies, Criteria{FundingRounds: []string{"Seed"}}))
		want := []string{"c1", "c4"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("missing round only matches empty label", func(t *testing.T) {
		got := ids(Apply(companies, Criteria{FundingRounds: []string{""}}))
		want := []string{"c3"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestApplyTeamSize(t *testing.T) {
	companies := testCompanies()

	tests := []struct {
		name string
		rng  SizeRange
		want []string
	}{
		{"zero range includes the unknown-size record", SizeRange{Min: 0, Max: 0}, []string{"c3"}},
		{"one and up excludes it", SizeRange{Min: 1, Max: 1 << 30}, []string{"c1", "c2", "c4"}},
		{"narrow band", SizeRange{Min: 3, Max: 10}, []string{"c1"}},
		{"inverted range is swapped, not empty", SizeRange{Min: 10, Max: 3}, []string{"c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := tt.rng
			got := ids(Apply(companies, Criteria{TeamSize: &rng}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyTagsIsIntersection(t *testing.T) {
	companies := testCompanies()

	// One shared tag suffices: c1 has [AI B2B], the filter {AI} keeps it.
	got := ids(Apply(companies, Criteria{Tags: []string{"AI"}}))
	want := []string{"c1", "c4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// c2 has only [B2B], so {AI} excludes it even though B2B overlaps other
	// filters elsewhere.
	for _, id := range got {
		if id == "c2" {
			t.Error("tag filter {AI} must exclude a record tagged only B2B")
		}
	}
}

func TestApplyConjunction(t *testing.T) {
	companies := testCompanies()
	rng := SizeRange{Min: 1, Max: 10}
	got := ids(Apply(companies, Criteria{
		Categories: []string{"AI"},
		Tags:       []string{"AI"},
		TeamSize:   &rng,
	}))
	want := []string{"c1"} // c4 fails the size band
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFacetHelpers(t *testing.T) {
	companies := testCompanies()

	if got, want := UniqueCategories(companies), []string{"AI", "DevTools", "Healthcare"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueCategories: got %v, want %v", got, want)
	}
	if got, want := UniqueFundingRounds(companies), []string{"Pre-Seed", "Seed"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueFundingRounds: got %v, want %v", got, want)
	}
	if got, want := UniqueTags(companies), []string{"AI", "B2B", "Biotech", "Infra"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueTags: got %v, want %v", got, want)
	}
	if got, want := TeamSizeBounds(companies), (SizeRange{Min: 2, Max: 12}); got != want {
		t.Errorf("TeamSizeBounds: got %+v, want %+v", got, want)
	}
}

func TestTeamSizeBoundsEmptyDataset(t *testing.T) {
	got := TeamSizeBounds(nil)
	if got != (SizeRange{Min: 0, Max: 100}) {
		t.Errorf("got %+v, want default [0, 100]", got)
	}
}
