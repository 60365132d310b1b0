// Package dreamtools provides MCP tool handlers for the dream journal.
//
// Each tool handler follows the same pattern:
// - A struct with dependencies (journal.Journal) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Validation failures and bad arguments are reported as tool errors, never
// as Go errors: the transport stays healthy and the client sees the reason.
package dreamtools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// numberArg extracts a numeric argument from a tool request, returning
// defaultVal if the key is missing. The raw float64 is returned so callers
// can reject non-integral values with a type error instead of truncating.
func numberArg(req mcp.CallToolRequest, key string, defaultVal float64) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal, false
	}
	return v, true
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// truncate shortens s to max runes, appending an ellipsis when it cuts.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
