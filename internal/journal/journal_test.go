package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oneirotools/oneiro/internal/sentiment"
)

// stubProvider returns a fixed score, or an error when failing is set.
type stubProvider struct {
	score   sentiment.Score
	failing bool
}

func (p *stubProvider) Analyze(_ context.Context, _ string) (sentiment.Score, error) {
	if p.failing {
		return sentiment.Score{}, errors.New("provider unavailable")
	}
	return p.score, nil
}

func newTestJournal(p sentiment.Provider) *Journal {
	return New(NewStore(), p, DefaultLimits())
}

func validParams() LogParams {
	d, _ := ParseDate("2025-06-10")
	return LogParams{
		Text:         "I was flying over a calm ocean, feeling happy and free",
		Date:         d,
		SleepQuality: 7,
	}
}

func TestJournal_LogStoresAnalyzedRecord(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{score: sentiment.Score{Polarity: 0.8, Subjectivity: 0.6}})

	record, err := j.Log(context.Background(), validParams())
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if record.ID != 1 {
		t.Errorf("ID = %d, want 1", record.ID)
	}
	if record.Polarity != 0.8 {
		t.Errorf("Polarity = %v, want 0.8", record.Polarity)
	}
	if record.Emotion != "joy" {
		t.Errorf("Emotion = %q, want joy", record.Emotion)
	}
	if len(record.Themes) == 0 {
		t.Error("expected themes for a flying-over-ocean dream")
	}
	if record.WordCount != 11 {
		t.Errorf("WordCount = %d, want 11", record.WordCount)
	}
	if j.Store().Len() != 1 {
		t.Errorf("store length = %d, want 1", j.Store().Len())
	}
}

func TestJournal_LogRejectsInvalidText(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{})

	p := validParams()
	p.Text = "too short"

	_, err := j.Log(context.Background(), p)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Code != ReasonTooShort {
		t.Errorf("Code = %q, want %q", verr.Code, ReasonTooShort)
	}
	if j.Store().Len() != 0 {
		t.Error("invalid entry must not be stored")
	}
}

func TestJournal_LogRejectsInvalidSleepQuality(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{})

	p := validParams()
	p.SleepQuality = 11

	_, err := j.Log(context.Background(), p)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Code != ReasonRange {
		t.Errorf("Code = %q, want %q", verr.Code, ReasonRange)
	}
}

func TestJournal_LogRejectsFutureDate(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{})

	p := validParams()
	p.Date, _ = ParseDate("2025-06-16")

	_, err := j.Log(context.Background(), p)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Code != ReasonFuture {
		t.Errorf("Code = %q, want %q", verr.Code, ReasonFuture)
	}
}

func TestJournal_ProviderFailureFallsBack(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{failing: true})

	record, err := j.Log(context.Background(), validParams())
	if err != nil {
		t.Fatalf("Log must not fail on provider error: %v", err)
	}

	fallback := sentiment.Fallback()
	if record.Polarity != fallback.Polarity {
		t.Errorf("Polarity = %v, want fallback %v", record.Polarity, fallback.Polarity)
	}
	if record.Subjectivity != fallback.Subjectivity {
		t.Errorf("Subjectivity = %v, want fallback %v", record.Subjectivity, fallback.Subjectivity)
	}
	// Keyword extraction is local and still runs on provider failure.
	if record.Emotion != "joy" {
		t.Errorf("Emotion = %q, want joy", record.Emotion)
	}
}

func TestJournal_LucidFlagIsUserAsserted(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{})

	// Text full of lucidity phrases, flag left false: stays false.
	p := validParams()
	p.Text = "I knew I was dreaming and took control of the dream entirely"
	record, err := j.Log(context.Background(), p)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if record.Lucid {
		t.Error("Lucid = true, want the user-asserted false")
	}

	// Plain text, flag set: stays true.
	p = validParams()
	p.Lucid = true
	record, err = j.Log(context.Background(), p)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if !record.Lucid {
		t.Error("Lucid = false, want the user-asserted true")
	}
}

func TestJournal_StoresCleanedText(t *testing.T) {
	pinNow(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	j := newTestJournal(&stubProvider{})

	p := validParams()
	p.Text = "I was   flying\n\nover the ocean in my dream"
	record, err := j.Log(context.Background(), p)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if record.Text != "I was flying over the ocean in my dream" {
		t.Errorf("Text = %q, want normalized whitespace", record.Text)
	}
}
