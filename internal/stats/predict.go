package stats

import "github.com/oneirotools/oneiro/internal/journal"

// predictionWindow is how many of the most recent records feed a prediction.
const predictionWindow = 5

// Prediction is a frequency-based guess at the next dream's dominant
// emotion and theme, derived from the most recent records.
type Prediction struct {
	Emotion    string `json:"predicted_emotion"`
	Theme      string `json:"predicted_theme"`
	SampleSize int    `json:"sample_size"`
}

// Predict returns the most frequent emotion and theme in the last
// predictionWindow records. The second return is false when fewer than
// minRecords records exist.
//
// The window is scanned oldest to newest and frequency ties keep the
// value encountered first in that scan, so the result is deterministic
// for a given record sequence. A window with no themes predicts "unknown".
func Predict(records []journal.DreamRecord, minRecords int) (Prediction, bool) {
	if len(records) < minRecords {
		return Prediction{}, false
	}

	window := records
	if len(window) > predictionWindow {
		window = window[len(window)-predictionWindow:]
	}

	emotionCounts := make(map[string]int)
	themeCounts := make(map[string]int)
	var emotionOrder, themeOrder []string

	for _, r := range window {
		if emotionCounts[r.Emotion] == 0 {
			emotionOrder = append(emotionOrder, r.Emotion)
		}
		emotionCounts[r.Emotion]++
		for _, theme := range r.Themes {
			if themeCounts[theme] == 0 {
				themeOrder = append(themeOrder, theme)
			}
			themeCounts[theme]++
		}
	}

	topEmotion := firstMax(emotionOrder, emotionCounts)
	topTheme := firstMax(themeOrder, themeCounts)
	if topTheme == "" {
		topTheme = "unknown"
	}
	return Prediction{
		Emotion:    topEmotion,
		Theme:      topTheme,
		SampleSize: len(window),
	}, true
}

// firstMax returns the label with the highest count, preferring the one
// seen earliest when counts tie. order holds labels in first-seen order.
func firstMax(order []string, counts map[string]int) string {
	top := ""
	for _, label := range order {
		if top == "" || counts[label] > counts[top] {
			top = label
		}
	}
	return top
}
