package models

import "encoding/json"

// VCReport is the generated due-diligence payload attached to a company.
// Factors share one shape (rating, analysis, sources) plus factor-specific
// extras that the query engine never inspects; those survive round-trips
// inside Factor.Extra.
type VCReport struct {
	ExecutiveSummary         string `json:"executiveSummary,omitempty"`
	InvestmentRecommendation string `json:"investmentRecommendation,omitempty"` // STRONG BUY, BUY, HOLD, PASS

	Traction           *Factor `json:"traction,omitempty"`
	GrowthRate         *Factor `json:"growthRate,omitempty"`
	TeamBackground     *Factor `json:"teamBackground,omitempty"`
	MarketSize         *Factor `json:"marketSize,omitempty"`
	ProductStatus      *Factor `json:"productStatus,omitempty"`
	NotableBackers     *Factor `json:"notableBackers,omitempty"`
	Defensibility      *Factor `json:"defensibility,omitempty"`
	UnitEconomics      *Factor `json:"unitEconomics,omitempty"`
	Competition        *Factor `json:"competition,omitempty"`
	PotentialAcquirers *Factor `json:"potentialAcquirers,omitempty"`
	FounderCommitment  *Factor `json:"founderCommitment,omitempty"`

	KeyRisks         []Risk        `json:"keyRisks,omitempty"`
	KeyOpportunities []Opportunity `json:"keyOpportunities,omitempty"`

	OverallScore   float64            `json:"overallScore,omitempty"` // 1-10
	ScoreBreakdown map[string]float64 `json:"scoreBreakdown,omitempty"`
	Recommendation string             `json:"recommendation,omitempty"`
	GeneratedAt    string             `json:"reportGeneratedAt,omitempty"`
	Version        string             `json:"reportVersion,omitempty"`
}

// Factor is one rated section of a report. Known keys are decoded into
// fields; everything else (legacy aliases, per-factor metrics) is kept
// verbatim in Extra.
type Factor struct {
	Rating   string   `json:"rating,omitempty"`
	Analysis string   `json:"analysis,omitempty"`
	Summary  string   `json:"summary,omitempty"` // legacy alias of Analysis
	Sources  []string `json:"sources,omitempty"`
	Evidence []string `json:"evidence,omitempty"` // legacy alias of Sources

	Extra map[string]json.RawMessage `json:"-"`
}

// factorAlias avoids recursion into the custom JSON methods.
type factorAlias Factor

var factorKnownKeys = map[string]bool{
	"rating":   true,
	"analysis": true,
	"summary":  true,
	"sources":  true,
	"evidence": true,
}

// UnmarshalJSON decodes known factor fields and stashes unknown keys.
func (f *Factor) UnmarshalJSON(data []byte) error {
	var a factorAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if factorKnownKeys[key] {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		a.Extra = raw
	}

	*f = Factor(a)
	return nil
}

// MarshalJSON re-emits known fields alongside the preserved extras.
func (f Factor) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(factorAlias(f))
	if err != nil {
		return nil, err
	}
	if len(f.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range f.Extra {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// Text returns the factor's narrative, preferring the current field name
// over the legacy alias.
func (f *Factor) Text() string {
	if f.Analysis != "" {
		return f.Analysis
	}
	return f.Summary
}

// Risk is one entry of a report's risk list.
type Risk struct {
	Risk        string `json:"risk"`
	Impact      string `json:"impact,omitempty"`
	Probability string `json:"probability,omitempty"`
	Mitigation  string `json:"mitigation,omitempty"`
}

// Opportunity is one entry of a report's opportunity list.
type Opportunity struct {
	Opportunity     string `json:"opportunity"`
	Timeframe       string `json:"timeframe,omitempty"`
	PotentialImpact string `json:"potentialImpact,omitempty"`
}

// Screening is the earlier-generation screening payload. Nothing in the
// query engine reads it, so it is carried as-is.
type Screening map[string]json.RawMessage
