package analysis

// Signals bundles every text-derived signal for one narrative. Confidence
// is 1.0 for a normal run and 0.0 when the fallback path was taken.
type Signals struct {
	Emotion    string            `json:"emotion"`
	Themes     []string          `json:"themes"`
	Keywords   []string          `json:"keywords"`
	Complexity ComplexityMetrics `json:"complexity"`
	Lucidity   LucidityReport    `json:"lucidity"`
	Confidence float64           `json:"confidence"`
}

// Analyze runs every extractor over the text.
//
// A panicking extractor must never block entry creation, so any panic
// degrades to FallbackSignals instead of propagating.
func Analyze(text string) (sig Signals) {
	defer func() {
		if r := recover(); r != nil {
			sig = FallbackSignals()
		}
	}()

	return Signals{
		Emotion:    ClassifyEmotion(text),
		Themes:     ExtractThemes(text),
		Keywords:   ExtractKeywords(text),
		Complexity: AnalyzeComplexity(text),
		Lucidity:   DetectLucidity(text),
		Confidence: 1.0,
	}
}

// FallbackSignals is the documented degraded result used when analysis
// fails: neutral emotion, no themes, zero confidence.
func FallbackSignals() Signals {
	return Signals{
		Emotion:    EmotionNeutral,
		Themes:     nil,
		Keywords:   nil,
		Confidence: 0.0,
	}
}
