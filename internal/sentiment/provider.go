// Package sentiment provides polarity/subjectivity scoring as an injected
// capability. The core pipeline depends only on the Provider interface; the
// default implementation is a deterministic in-process lexicon scorer, with
// an optional OpenAI-backed provider behind the same interface.
package sentiment

import "context"

// Score is scalar sentiment: polarity in [-1, 1] (negative = unpleasant),
// subjectivity in [0, 1] (degree of opinion vs. fact).
type Score struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Provider derives a sentiment score from free text.
type Provider interface {
	Analyze(ctx context.Context, text string) (Score, error)
}

// Fallback is the documented degraded score applied when a provider fails:
// neutral polarity, midpoint subjectivity.
func Fallback() Score {
	return Score{Polarity: 0.0, Subjectivity: 0.5}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
