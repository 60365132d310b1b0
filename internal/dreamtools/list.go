package dreamtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/journal"
)

// previewLen is how many characters of the narrative the listing shows.
const previewLen = 80

// ListTool handles the dream_list MCP tool.
type ListTool struct {
	store   *journal.Store
	maxList int
}

// NewListTool creates a ListTool over the given store. maxList caps the
// default page size.
func NewListTool(store *journal.Store, maxList int) *ListTool {
	return &ListTool{store: store, maxList: maxList}
}

// Definition returns the MCP tool definition for dream_list.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_list",
		mcp.WithDescription(
			"List recorded dreams, most recent first, with a short preview of each entry.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default: all up to the configured cap)"),
		),
	)
}

// Handle processes the dream_list tool call.
func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := t.store.List()
	if len(records) == 0 {
		return mcp.NewToolResultText("No dreams recorded yet. Use dream_log to record one."), nil
	}

	limit := t.maxList
	if raw, ok := numberArg(req, "limit", float64(limit)); ok && int(raw) > 0 {
		limit = int(raw)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Dream Journal (%d entries)\n\n", len(records)))

	shown := 0
	for i := len(records) - 1; i >= 0 && shown < limit; i-- {
		r := records[i]
		flags := ""
		if r.Lucid {
			flags = " [lucid]"
		}
		sb.WriteString(fmt.Sprintf("- **#%d** %s%s — %s | %s\n",
			r.ID, r.Date, flags, r.Emotion, truncate(r.Text, previewLen)))
		shown++
	}
	if shown < len(records) {
		sb.WriteString(fmt.Sprintf("\n(%d older entries not shown)\n", len(records)-shown))
	}

	return mcp.NewToolResultText(sb.String()), nil
}
