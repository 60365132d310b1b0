package analysis

import (
	"math"
	"strings"
)

// ComplexityMetrics describes the richness of a narrative. All fields are
// reproducible from the text alone; fractional values are rounded for
// display (one decimal, two for the uniqueness ratio) after the score is
// computed at full precision.
type ComplexityMetrics struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	UniquenessRatio   float64 `json:"uniqueness_ratio"`
	SymbolDensity     float64 `json:"symbol_density"`
	ComplexityScore   float64 `json:"complexity_score"`
}

// AnalyzeComplexity computes the 0-100 complexity score and its inputs.
//
// Sentences are the non-empty segments between periods — no other
// terminator is recognized, and a period-free non-empty text counts as one
// sentence. The score blends length, vocabulary diversity, and symbol
// density:
//
//	min(100, (words/10)*0.3 + uniqueness*100*0.3 + density*0.4)
func AnalyzeComplexity(text string) ComplexityMetrics {
	words := strings.Fields(text)
	wordCount := len(words)

	sentenceCount := 0
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}

	avgSentenceLength := float64(wordCount) / math.Max(float64(sentenceCount), 1)

	unique := make(map[string]struct{}, wordCount)
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
	}
	uniquenessRatio := float64(len(unique)) / math.Max(float64(wordCount), 1)

	// Each (category, keyword) pair counts once; a keyword shared by two
	// categories counts in both scans.
	lower := strings.ToLower(text)
	symbolCount := 0
	for _, cat := range symbolTable {
		for _, sym := range cat.symbols {
			if strings.Contains(lower, sym) {
				symbolCount++
			}
		}
	}
	symbolDensity := float64(symbolCount) / math.Max(float64(wordCount), 1) * 100

	score := float64(wordCount)/10*0.3 + uniquenessRatio*100*0.3 + symbolDensity*0.4
	if score > 100 {
		score = 100
	}

	return ComplexityMetrics{
		WordCount:         wordCount,
		SentenceCount:     sentenceCount,
		AvgSentenceLength: round1(avgSentenceLength),
		UniquenessRatio:   round2(uniquenessRatio),
		SymbolDensity:     round1(symbolDensity),
		ComplexityScore:   round1(score),
	}
}

// round1 rounds to one decimal place.
func round1(f float64) float64 { return math.Round(f*10) / 10 }

// round2 rounds to two decimal places.
func round2(f float64) float64 { return math.Round(f*100) / 100 }
