package analysis

import "strings"

// LucidityReport is the advisory lucidity estimate for a narrative.
//
// This is a detector signal, not the record's lucid flag: the stored flag is
// user-asserted, and the two are deliberately never merged.
type LucidityReport struct {
	Indicators  []string `json:"indicators"`
	Probability float64  `json:"probability"`
	LikelyLucid bool     `json:"likely_lucid"`
}

// DetectLucidity scans the text for lucidity indicator phrases.
//
// Probability is min(1.0, matches * 0.3), so likely_lucid (probability
// above 0.5) requires at least two distinct indicators.
func DetectLucidity(text string) LucidityReport {
	lower := strings.ToLower(text)

	var found []string
	for _, phrase := range lucidityIndicators {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}

	p := float64(len(found)) * 0.3
	if p > 1.0 {
		p = 1.0
	}
	return LucidityReport{
		Indicators:  found,
		Probability: round2(p),
		LikelyLucid: p > 0.5,
	}
}
