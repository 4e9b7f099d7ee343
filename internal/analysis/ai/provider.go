package ai

import "context"

// Insights is the structured result requested from the language-model
// service. Everything here is advisory: the pipeline works without it.
type Insights struct {
	Category    string    `json:"category"`
	Confidence  float64   `json:"confidence"`
	Summary     string    `json:"summary"`
	KeyFindings []string  `json:"key_findings,omitempty"`
	KeyDates    []string  `json:"key_dates,omitempty"`
	Amounts     []float64 `json:"amounts,omitempty"`
}

type Provider interface {
	Analyze(ctx context.Context, text string, filename string) (*Insights, error)
}

// ResultCache caches provider responses keyed by an embedding of the
// analyzed text, so near-identical documents skip the model call.
type ResultCache interface {
	Lookup(ctx context.Context, vector []float32) (*Insights, bool)
	Save(ctx context.Context, id string, vector []float32, insights *Insights) error
}
