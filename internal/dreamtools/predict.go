package dreamtools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneirotools/oneiro/internal/journal"
	"github.com/oneirotools/oneiro/internal/stats"
)

// PredictTool handles the dream_predict MCP tool.
type PredictTool struct {
	store  *journal.Store
	limits journal.Limits
}

// NewPredictTool creates a PredictTool over the given store.
func NewPredictTool(store *journal.Store, limits journal.Limits) *PredictTool {
	return &PredictTool{store: store, limits: limits}
}

// Definition returns the MCP tool definition for dream_predict.
func (t *PredictTool) Definition() mcp.Tool {
	return mcp.NewTool("dream_predict",
		mcp.WithDescription(
			"Predict the likely emotion and theme of your next dream from recent entries. "+
				"Requires at least 3 recorded dreams.",
		),
	)
}

// Handle processes the dream_predict tool call.
func (t *PredictTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := t.store.List()
	p, ok := stats.Predict(records, t.limits.MinRecordsForPrediction)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Not enough data to predict: %d dreams recorded, %d needed",
			len(records), t.limits.MinRecordsForPrediction)), nil
	}

	mean := stats.Calculate(records).MeanPolarity
	msg := fmt.Sprintf(
		"## Next Dream Prediction\n\n"+
			"- **Predicted emotion**: %s\n"+
			"- **Predicted theme**: %s\n"+
			"- **Based on**: your last %d dreams\n\n%s\n",
		p.Emotion, p.Theme, p.SampleSize, stats.Recommend(mean))
	return mcp.NewToolResultText(msg), nil
}
