package dreamtools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/journal"
)

// ClearTool handles the dream_clear MCP tool.
type ClearTool struct {
	store *journal.Store
}

// NewClearTool creates a ClearTool over the given store.
func NewClearTool(store *journal.Store) *ClearTool {
	return &ClearTool{store: store}
}

// Definition returns the MCP tool definition for dream_clear.
func (t *ClearTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_clear",
		mcp.WithDescription(
			"Delete every recorded dream from the session. This cannot be undone; "+
				"export first if you want to keep the data.",
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to actually clear the journal"),
		),
	)
}

// Handle processes the dream_clear tool call.
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !boolArg(req, "confirm", false) {
		return mcp.NewToolResultError("set 'confirm' to true to clear the journal"), nil
	}

	n := t.store.Clear()
	if n == 0 {
		return mcp.NewToolResultText("Journal was already empty."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Cleared %d dreams from the journal.", n)), nil
}
