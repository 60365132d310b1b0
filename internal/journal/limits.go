package journal

// Limits holds the validation and aggregation thresholds for a journal.
type Limits struct {
	// MinTextLen / MaxTextLen bound the narrative length in characters.
	// The minimum applies to the trimmed text, the maximum to the raw text.
	MinTextLen int
	MaxTextLen int

	// MinSleepQuality / MaxSleepQuality bound the sleep rating.
	MinSleepQuality int
	MaxSleepQuality int

	// MaxDatePastDays is how far back an entry date may lie (inclusive).
	MaxDatePastDays int

	// MinRecordsForPrediction is the smallest store that predictions run on.
	MinRecordsForPrediction int

	// MaxExportRecords caps how many records a single export may serialize.
	MaxExportRecords int
}

// DefaultLimits returns the standard journal thresholds.
func DefaultLimits() Limits {
	return Limits{
		MinTextLen:              10,
		MaxTextLen:              5000,
		MinSleepQuality:         1,
		MaxSleepQuality:         10,
		MaxDatePastDays:         3650,
		MinRecordsForPrediction: 3,
		MaxExportRecords:        10000,
	}
}
