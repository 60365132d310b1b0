package journal

import (
	"context"
	"strings"

	"github.com/oneirotools/oneiro/internal/analysis"
	"github.com/oneirotools/oneiro/internal/sentiment"
)

// Journal composes validation, analysis, and the sentiment provider into
// the entry pipeline: validate → analyze → build record → append.
type Journal struct {
	store    *Store
	provider sentiment.Provider
	limits   Limits
}

// New creates a Journal over the given store and sentiment provider.
func New(store *Store, provider sentiment.Provider, limits Limits) *Journal {
	return &Journal{store: store, provider: provider, limits: limits}
}

// Store exposes the underlying record store.
func (j *Journal) Store() *Store { return j.store }

// Limits exposes the journal's thresholds.
func (j *Journal) Limits() Limits { return j.limits }

// LogParams is the raw input for one journal entry. Lucid is the user's
// own assertion — the lucidity detector's estimate is advisory and never
// written to the record.
type LogParams struct {
	Text         string
	Date         Date
	Lucid        bool
	SleepQuality int
}

// Log validates the input, derives the signals, and appends the record.
//
// Validation failures return a *ValidationError with a stable reason code.
// Analysis failures never fail the entry: a provider error degrades to the
// fallback score, and extractor panics degrade to fallback signals inside
// analysis.Analyze.
func (j *Journal) Log(ctx context.Context, p LogParams) (DreamRecord, error) {
	if v := ValidateText(p.Text, j.limits); !v.OK {
		return DreamRecord{}, &ValidationError{Code: v.Code, Message: v.Message}
	}
	if v := ValidateSleepQuality(p.SleepQuality, j.limits); !v.OK {
		return DreamRecord{}, &ValidationError{Code: v.Code, Message: v.Message}
	}
	if v := ValidateDate(p.Date, j.limits); !v.OK {
		return DreamRecord{}, &ValidationError{Code: v.Code, Message: v.Message}
	}

	score, err := j.provider.Analyze(ctx, p.Text)
	if err != nil {
		score = sentiment.Fallback()
	}
	sig := analysis.Analyze(p.Text)

	record := DreamRecord{
		Date:         p.Date,
		Text:         analysis.CleanText(p.Text),
		Polarity:     score.Polarity,
		Subjectivity: score.Subjectivity,
		Emotion:      sig.Emotion,
		Themes:       sig.Themes,
		Lucid:        p.Lucid,
		SleepQuality: p.SleepQuality,
		WordCount:    len(strings.Fields(p.Text)),
	}
	return j.store.Append(record), nil
}
