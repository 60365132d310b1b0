package dreamtools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/journal"
)

// defaultSleepQuality is assumed when the caller does not rate their sleep.
const defaultSleepQuality = 7

// LogTool handles the dream_log MCP tool.
type LogTool struct {
	journal *journal.Journal
}

// NewLogTool creates a LogTool over the given journal.
func NewLogTool(j *journal.Journal) *LogTool {
	return &LogTool{journal: j}
}

// Definition returns the MCP tool definition for dream_log.
func (t *LogTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_log",
		mcp.WithDescription(
			"Record a dream in the journal. The text is analyzed for sentiment, dominant emotion, "+
				"and recurring themes, and the entry is stored for statistics, prediction, and export.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The dream narrative, free text (10 to 5000 characters)"),
		),
		mcp.WithString("date",
			mcp.Description("Date of the dream in YYYY-MM-DD format (default: today)"),
		),
		mcp.WithBoolean("lucid",
			mcp.Description("Whether you knew you were dreaming (default: false)"),
		),
		mcp.WithNumber("sleep_quality",
			mcp.Description("Sleep quality from 1 to 10 (default: 7)"),
		),
	)
}

// Handle processes the dream_log tool call.
func (t *LogTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	date := journal.Today()
	if raw := req.GetString("date", ""); raw != "" {
		parsed, err := journal.ParseDate(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", raw)), nil
		}
		date = parsed
	}

	lim := t.journal.Limits()
	sleepRaw, _ := numberArg(req, "sleep_quality", defaultSleepQuality)
	if v := journal.ValidateSleepQualityNumber(sleepRaw, lim); !v.OK {
		return mcp.NewToolResultError(v.Message), nil
	}

	record, err := t.journal.Log(ctx, journal.LogParams{
		Text:         text,
		Date:         date,
		Lucid:        boolArg(req, "lucid", false),
		SleepQuality: int(sleepRaw),
	})
	if err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			return mcp.NewToolResultError(verr.Message), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to log dream: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dream logged (ID: %d, %s)\n\n", record.ID, record.Date))
	sb.WriteString(fmt.Sprintf("- **Emotion**: %s\n", record.Emotion))
	if len(record.Themes) > 0 {
		sb.WriteString(fmt.Sprintf("- **Themes**: %s\n", strings.Join(record.Themes, ", ")))
	} else {
		sb.WriteString("- **Themes**: none detected\n")
	}
	sb.WriteString(fmt.Sprintf("- **Polarity**: %.2f | **Subjectivity**: %.2f\n", record.Polarity, record.Subjectivity))
	sb.WriteString(fmt.Sprintf("- **Lucid**: %t | **Sleep quality**: %d/10\n", record.Lucid, record.SleepQuality))
	sb.WriteString(fmt.Sprintf("- **Words**: %d\n", record.WordCount))

	return mcp.NewToolResultText(sb.String()), nil
}
