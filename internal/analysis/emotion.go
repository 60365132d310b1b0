package analysis

import "strings"

// ClassifyEmotion returns the dominant emotion label for the text.
//
// Each emotion scores one point per keyword present as a case-insensitive
// substring. The winner is the emotion with the highest score; ties resolve
// to the emotion declared first in the table (stable argmax). A text with no
// keyword hits at all classifies as neutral.
func ClassifyEmotion(text string) string {
	lower := strings.ToLower(text)

	best := EmotionNeutral
	bestScore := 0
	for _, e := range emotionTable {
		score := 0
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		// Strictly greater: the first emotion reaching the max keeps it.
		if score > bestScore {
			best = e.label
			bestScore = score
		}
	}
	return best
}
