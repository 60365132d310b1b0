package stats

// Recommend maps a mean polarity to a short piece of advice. The bands
// match the positive/negative thresholds used by Calculate.
func Recommend(meanPolarity float64) string {
	switch {
	case meanPolarity < negativeThreshold:
		return "Your recent dreams lean negative. Consider a relaxation routine before bed."
	case meanPolarity > positiveThreshold:
		return "Your recent dreams lean positive. Whatever you are doing, keep it up."
	default:
		return "Your recent dreams are emotionally balanced."
	}
}
