// Oneiro: Dream Journal MCP Server
//
// An MCP server that records and analyzes dream narratives — sentiment,
// dominant emotion, recurring themes, lucidity signals — with statistics,
// prediction, and export over the session's journal.
//
// Usage:
//
//	oneiro serve    # Start MCP server (stdio transport)
//	oneiro update   # Update to the latest version
package main

import (
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/oneirotools/oneiro/internal/config"
	"github.com/oneirotools/oneiro/internal/server"
	"github.com/oneirotools/oneiro/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("oneiro v%s\n", server.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s := server.New(cfg)

	// Background version check — prints to stderr so it doesn't
	// interfere with MCP's stdio transport on stdout.
	go checkForUpdates()

	return mcpserver.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. This runs in a goroutine during
// "serve" and is best-effort — network failures are silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(server.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s → v%s\n"+
				"  Run: oneiro update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "Checking for updates...\n")

	result := updater.CheckVersion(server.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "New version available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Downloading...\n")

	if err := updater.SelfUpdate(server.Version); err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n  You can download manually from:\n  %s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Restart oneiro to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Oneiro v%s — Dream Journal MCP Server

Usage:
  oneiro serve    Start the MCP server (stdio transport)
  oneiro update   Update to the latest version

Environment:
  ONEIRO_SENTIMENT_PROVIDER   lexicon (default) or openai
  ONEIRO_OPENAI_MODEL         model for the openai provider (default gpt-4o-mini)
  OPENAI_API_KEY              required for the openai provider
  ONEIRO_MAX_LIST             default page size for dream_list (default 20)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "oneiro": {
        "command": "oneiro",
        "args": ["serve"]
      }
    }
  }

Learn more: https://github.com/oneirotools/oneiro
`, server.Version)
}
