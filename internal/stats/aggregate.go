// Package stats rolls a journal's records up into corpus-level statistics
// and a frequency-based next-dream prediction. All functions are pure over
// the record slice they are given.
package stats

import (
	"math"

	"github.com/oneirotools/oneiro/internal/journal"
)

// Polarity thresholds for the positive/negative bands. Values inside
// (-0.1, 0.1] on the low side and [-0.1, 0.1) on the high side are neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Statistics is the corpus-level rollup. Weekdays with no records are
// absent from WeekdayPolarity rather than reported as zero, and the
// sleep/polarity correlation is nil whenever it is undefined (fewer than
// two records, or zero variance on either axis).
type Statistics struct {
	Total int

	EarliestDate string
	LatestDate   string

	MeanPolarity  float64
	StdPolarity   float64
	PositiveCount int
	NegativeCount int

	MeanSleepQuality float64
	MaxSleepQuality  int
	MinSleepQuality  int

	LucidCount      int
	LucidPercentage float64

	SleepPolarityCorrelation *float64

	EmotionCounts   map[string]int
	ThemeCounts     map[string]int
	WeekdayPolarity map[string]float64
}

// Calculate computes statistics over records in insertion order. An empty
// slice yields a zero-total result with no division errors.
func Calculate(records []journal.DreamRecord) Statistics {
	s := Statistics{
		Total:           len(records),
		EmotionCounts:   make(map[string]int),
		ThemeCounts:     make(map[string]int),
		WeekdayPolarity: make(map[string]float64),
	}
	if s.Total == 0 {
		return s
	}

	polaritySum := 0.0
	sleepSum := 0
	s.MaxSleepQuality = records[0].SleepQuality
	s.MinSleepQuality = records[0].SleepQuality
	s.EarliestDate = records[0].Date.String()
	s.LatestDate = records[0].Date.String()

	weekdaySums := make(map[string]float64)
	weekdayCounts := make(map[string]int)

	for _, r := range records {
		polaritySum += r.Polarity
		if r.Polarity > positiveThreshold {
			s.PositiveCount++
		}
		if r.Polarity < negativeThreshold {
			s.NegativeCount++
		}

		sleepSum += r.SleepQuality
		if r.SleepQuality > s.MaxSleepQuality {
			s.MaxSleepQuality = r.SleepQuality
		}
		if r.SleepQuality < s.MinSleepQuality {
			s.MinSleepQuality = r.SleepQuality
		}

		if r.Lucid {
			s.LucidCount++
		}

		if d := r.Date.String(); d < s.EarliestDate {
			s.EarliestDate = d
		} else if d > s.LatestDate {
			s.LatestDate = d
		}

		s.EmotionCounts[r.Emotion]++
		for _, theme := range r.Themes {
			s.ThemeCounts[theme]++
		}

		wd := r.Date.Weekday()
		weekdaySums[wd] += r.Polarity
		weekdayCounts[wd]++
	}

	n := float64(s.Total)
	s.MeanPolarity = polaritySum / n
	s.MeanSleepQuality = float64(sleepSum) / n
	s.LucidPercentage = float64(s.LucidCount) / n * 100

	// Sample standard deviation; 0 by contract when n < 2.
	if s.Total >= 2 {
		sq := 0.0
		for _, r := range records {
			d := r.Polarity - s.MeanPolarity
			sq += d * d
		}
		s.StdPolarity = math.Sqrt(sq / (n - 1))
	}

	for wd, sum := range weekdaySums {
		s.WeekdayPolarity[wd] = sum / float64(weekdayCounts[wd])
	}

	s.SleepPolarityCorrelation = correlation(records)
	return s
}

// correlation returns the Pearson coefficient between sleep quality and
// polarity, or nil when it is undefined.
func correlation(records []journal.DreamRecord) *float64 {
	n := float64(len(records))
	if n < 2 {
		return nil
	}

	meanSleep, meanPol := 0.0, 0.0
	for _, r := range records {
		meanSleep += float64(r.SleepQuality)
		meanPol += r.Polarity
	}
	meanSleep /= n
	meanPol /= n

	cov, varSleep, varPol := 0.0, 0.0, 0.0
	for _, r := range records {
		ds := float64(r.SleepQuality) - meanSleep
		dp := r.Polarity - meanPol
		cov += ds * dp
		varSleep += ds * ds
		varPol += dp * dp
	}
	if varSleep == 0 || varPol == 0 {
		return nil
	}

	r := cov / math.Sqrt(varSleep*varPol)
	return &r
}
