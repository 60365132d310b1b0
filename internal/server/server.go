// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the store, sentiment provider,
// and journal, and injects them into the tools that depend on them. No
// business logic lives here — only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/oneirotools/oneiro/internal/config"
	"github.com/oneirotools/oneiro/internal/dreamtools"
	"github.com/oneirotools/oneiro/internal/journal"
	"github.com/oneirotools/oneiro/internal/sentiment"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all dream journal tools
// registered. This is the single place where all dependencies are resolved.
func New(cfg config.Config) *server.MCPServer {
	// --- Create shared dependencies ---

	store := journal.NewStore()
	limits := journal.DefaultLimits()
	j := journal.New(store, newProvider(cfg), limits)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"oneiro",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register journal tools ---

	logTool := dreamtools.NewLogTool(j)
	s.AddTool(logTool.Definition(), logTool.Handle)

	analyzeTool := dreamtools.NewAnalyzeTool(newProvider(cfg), limits)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	listTool := dreamtools.NewListTool(store, cfg.MaxList)
	s.AddTool(listTool.Definition(), listTool.Handle)

	statsTool := dreamtools.NewStatsTool(store)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	predictTool := dreamtools.NewPredictTool(store, limits)
	s.AddTool(predictTool.Definition(), predictTool.Handle)

	exportTool := dreamtools.NewExportTool(store, limits)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	clearTool := dreamtools.NewClearTool(store)
	s.AddTool(clearTool.Definition(), clearTool.Handle)

	return s
}

// newProvider resolves the configured sentiment provider. A missing API key
// degrades to the lexicon provider with a warning instead of failing the
// server: the journal must keep working offline.
func newProvider(cfg config.Config) sentiment.Provider {
	if cfg.SentimentProvider == config.ProviderOpenAI {
		if cfg.OpenAIAPIKey == "" {
			log.Printf("WARNING: openai sentiment provider selected but OPENAI_API_KEY is empty, using lexicon")
			return sentiment.NewLexicon()
		}
		return sentiment.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return sentiment.NewLexicon()
}

// serverInstructions returns the system instructions that tell the AI
// how to use the dream journal effectively.
func serverInstructions() string {
	return `You have access to Oneiro, a dream journal MCP server.

## What it does
Oneiro records dream narratives and analyzes each one for sentiment,
dominant emotion, recurring themes, and lucidity signals. Entries live in
memory for the current session only — suggest dream_export before the
session ends if the user wants to keep their data.

## Tools
- dream_log: record a dream (text required; date, lucid, sleep_quality optional)
- dream_analyze: analyze text without storing it
- dream_list: list recorded dreams, most recent first
- dream_stats: journal statistics, mood patterns, and a recommendation
- dream_predict: predict the next dream's emotion and theme (needs 3+ entries)
- dream_export: export the journal as json, csv, or markdown
- dream_clear: delete all entries (requires confirm=true)

## Guidance
- Ask for the dream in the user's own words — do not rewrite it before logging
- Pass the date only when the user names one; the default is today
- Set lucid=true only when the user says they knew they were dreaming;
  the analyzer's lucidity estimate is advisory
- After logging several dreams, offer dream_stats and dream_predict`
}
