package dreamtools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/journal"
	"github.com/oneirotools/oneiro/internal/stats"
)

// StatsTool handles the dream_stats MCP tool.
type StatsTool struct {
	store *journal.Store
}

// NewStatsTool creates a StatsTool over the given store.
func NewStatsTool(store *journal.Store) *StatsTool {
	return &StatsTool{store: store}
}

// Definition returns the MCP tool definition for dream_stats.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_stats",
		mcp.WithDescription(
			"Show journal statistics — entry counts, sentiment averages, emotion and theme "+
				"frequencies, lucid dream rate, sleep quality, and weekday mood patterns.",
		),
	)
}

// Handle processes the dream_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s := stats.Calculate(t.store.List())
	if s.Total == 0 {
		return mcp.NewToolResultText("No dreams recorded yet. Use dream_log to record one."), nil
	}

	var sb strings.Builder
	sb.WriteString("## Dream Journal Statistics\n\n")
	sb.WriteString(fmt.Sprintf("- **Entries**: %d (%s to %s)\n", s.Total, s.EarliestDate, s.LatestDate))
	sb.WriteString(fmt.Sprintf("- **Mean polarity**: %.2f (std %.2f)\n", s.MeanPolarity, s.StdPolarity))
	sb.WriteString(fmt.Sprintf("- **Positive / negative dreams**: %d / %d\n", s.PositiveCount, s.NegativeCount))
	sb.WriteString(fmt.Sprintf("- **Lucid dreams**: %d (%.1f%%)\n", s.LucidCount, s.LucidPercentage))
	sb.WriteString(fmt.Sprintf("- **Sleep quality**: %.1f avg (min %d, max %d)\n",
		s.MeanSleepQuality, s.MinSleepQuality, s.MaxSleepQuality))
	if s.SleepPolarityCorrelation != nil {
		sb.WriteString(fmt.Sprintf("- **Sleep/mood correlation**: %.2f\n", *s.SleepPolarityCorrelation))
	}

	writeCounts(&sb, "Emotions", s.EmotionCounts)
	writeCounts(&sb, "Themes", s.ThemeCounts)

	if len(s.WeekdayPolarity) > 0 {
		sb.WriteString("\n### Mood by weekday\n\n")
		for _, wd := range weekdayOrder {
			if p, ok := s.WeekdayPolarity[wd]; ok {
				sb.WriteString(fmt.Sprintf("- **%s**: %.2f\n", wd, p))
			}
		}
	}

	sb.WriteString("\n" + stats.Recommend(s.MeanPolarity) + "\n")
	return mcp.NewToolResultText(sb.String()), nil
}

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// writeCounts renders a count map as a section, most frequent first with
// name order breaking ties.
func writeCounts(sb *strings.Builder, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	sb.WriteString(fmt.Sprintf("\n### %s\n\n", title))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("- **%s**: %d\n", name, counts[name]))
	}
}
