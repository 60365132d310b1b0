package dreamtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/analysis"
	"github.com/oneirotools/oneiro/internal/journal"
	"github.com/oneirotools/oneiro/internal/sentiment"
)

// AnalyzeTool handles the dream_analyze MCP tool.
type AnalyzeTool struct {
	provider sentiment.Provider
	limits   journal.Limits
}

// NewAnalyzeTool creates an AnalyzeTool with the given sentiment provider.
func NewAnalyzeTool(provider sentiment.Provider, limits journal.Limits) *AnalyzeTool {
	return &AnalyzeTool{provider: provider, limits: limits}
}

// Definition returns the MCP tool definition for dream_analyze.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_analyze",
		mcp.WithDescription(
			"Analyze a dream without storing it. Returns sentiment, dominant emotion, themes, "+
				"keywords, complexity metrics, and a lucidity estimate for the text.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The dream narrative to analyze (10 to 5000 characters)"),
		),
	)
}

// Handle processes the dream_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if v := journal.ValidateText(text, t.limits); !v.OK {
		return mcp.NewToolResultError(v.Message), nil
	}

	score, err := t.provider.Analyze(ctx, text)
	if err != nil {
		score = sentiment.Fallback()
	}
	sig := analysis.Analyze(text)

	var sb strings.Builder
	sb.WriteString("## Dream Analysis\n\n")
	sb.WriteString(fmt.Sprintf("- **Polarity**: %.2f | **Subjectivity**: %.2f\n", score.Polarity, score.Subjectivity))
	sb.WriteString(fmt.Sprintf("- **Emotion**: %s\n", sig.Emotion))
	if len(sig.Themes) > 0 {
		sb.WriteString(fmt.Sprintf("- **Themes**: %s\n", strings.Join(sig.Themes, ", ")))
	} else {
		sb.WriteString("- **Themes**: none detected\n")
	}
	if len(sig.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("- **Keywords**: %s\n", strings.Join(sig.Keywords, ", ")))
	}

	c := sig.Complexity
	sb.WriteString("\n### Complexity\n\n")
	sb.WriteString(fmt.Sprintf("- **Score**: %.1f/100\n", c.ComplexityScore))
	sb.WriteString(fmt.Sprintf("- **Words**: %d in %d sentences (%.1f avg)\n", c.WordCount, c.SentenceCount, c.AvgSentenceLength))
	sb.WriteString(fmt.Sprintf("- **Vocabulary uniqueness**: %.2f\n", c.UniquenessRatio))
	sb.WriteString(fmt.Sprintf("- **Symbol density**: %.2f\n", c.SymbolDensity))

	l := sig.Lucidity
	sb.WriteString("\n### Lucidity\n\n")
	sb.WriteString(fmt.Sprintf("- **Probability**: %.2f", l.Probability))
	if l.LikelyLucid {
		sb.WriteString(" (likely lucid)")
	}
	sb.WriteString("\n")
	if len(l.Indicators) > 0 {
		sb.WriteString(fmt.Sprintf("- **Indicators**: %s\n", strings.Join(l.Indicators, ", ")))
	}

	return mcp.NewToolResultText(sb.String()), nil
}
