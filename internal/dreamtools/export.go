package dreamtools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/export"
	"github.com/oneirotools/oneiro/internal/journal"
)

// ExportTool handles the dream_export MCP tool.
type ExportTool struct {
	store  *journal.Store
	limits journal.Limits
}

// NewExportTool creates an ExportTool over the given store.
func NewExportTool(store *journal.Store, limits journal.Limits) *ExportTool {
	return &ExportTool{store: store, limits: limits}
}

// Definition returns the MCP tool definition for dream_export.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_export",
		mcp.WithDescription(
			"Export the full journal as json, csv, or markdown. The output is the raw "+
				"serialized document, ready to save to a file.",
		),
		mcp.WithString("format",
			mcp.Description("Export format: json, csv, or markdown (default: json)"),
		),
	)
}

// Handle processes the dream_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := export.Format(req.GetString("format", string(export.FormatJSON)))

	out, err := export.Export(t.store.List(), format, t.limits.MaxExportRecords)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"unsupported format %q: use json, csv, or markdown", format)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}
