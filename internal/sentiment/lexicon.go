package sentiment

import (
	"context"
	"math"
	"regexp"
	"strings"
)

// Lexicon is the default sentiment provider: a small valence lexicon with
// intensifier weighting. It is deterministic, offline, and never fails, so
// the journal works without any external service.
type Lexicon struct{}

// NewLexicon creates the default lexicon provider.
func NewLexicon() *Lexicon { return &Lexicon{} }

// positiveWords and negativeWords carry per-word valence magnitudes.
var positiveWords = map[string]float64{
	"happy": 1.0, "joy": 1.0, "joyful": 1.0, "wonderful": 1.0,
	"amazing": 1.0, "great": 0.8, "fantastic": 1.0, "love": 1.0,
	"loving": 0.9, "beautiful": 0.9, "peaceful": 0.8, "calm": 0.6,
	"excited": 0.8, "delighted": 1.0, "cheerful": 0.9, "bliss": 1.0,
	"good": 0.6, "nice": 0.5, "pleasant": 0.7, "free": 0.5,
	"safe": 0.6, "warm": 0.5, "bright": 0.5, "laughing": 0.8,
}

var negativeWords = map[string]float64{
	"scared": 1.0, "afraid": 1.0, "terrified": 1.0, "nightmare": 1.0,
	"horror": 1.0, "panic": 1.0, "angry": 0.9, "furious": 1.0,
	"sad": 0.9, "depressed": 1.0, "crying": 0.9, "lonely": 0.8,
	"dark": 0.5, "terrible": 1.0, "awful": 1.0, "horrible": 1.0,
	"bad": 0.6, "dead": 0.8, "dying": 0.9, "lost": 0.6,
	"trapped": 0.9, "falling": 0.5, "anxious": 0.8, "worried": 0.7,
	"helpless": 0.9, "pain": 0.8, "hurt": 0.7, "scream": 0.8,
}

// intensifiers scale the valence of the word that follows them.
var intensifiers = map[string]float64{
	"very": 1.5, "extremely": 2.0, "incredibly": 1.8,
	"really": 1.3, "quite": 1.2, "somewhat": 0.8,
	"slightly": 0.6, "barely": 0.4,
}

var tokenRe = regexp.MustCompile(`[a-z']+`)

// Analyze scores the text against the lexicon. Polarity is the mean signed
// valence of sentiment-bearing words (intensifier-scaled, clamped to
// [-1, 1]); subjectivity is the density of sentiment-bearing and
// intensifier words, scaled and clamped to [0, 1].
func (l *Lexicon) Analyze(_ context.Context, text string) (Score, error) {
	words := tokenRe.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return Score{Polarity: 0.0, Subjectivity: 0.0}, nil
	}

	sum := 0.0
	hits := 0
	opinionWords := 0
	for i, w := range words {
		mult := 1.0
		if i > 0 {
			if m, ok := intensifiers[words[i-1]]; ok {
				mult = m
			}
		}
		if _, ok := intensifiers[w]; ok {
			opinionWords++
			continue
		}
		if v, ok := positiveWords[w]; ok {
			sum += v * mult
			hits++
		} else if v, ok := negativeWords[w]; ok {
			sum -= v * mult
			hits++
		}
	}

	polarity := 0.0
	if hits > 0 {
		polarity = clamp(sum/float64(hits), -1.0, 1.0)
	}
	subjectivity := clamp(float64(hits+opinionWords)/float64(len(words))*4, 0.0, 1.0)

	return Score{
		Polarity:     round2(polarity),
		Subjectivity: round2(subjectivity),
	}, nil
}

// round2 rounds to two decimal places.
func round2(f float64) float64 { return math.Round(f*100) / 100 }
