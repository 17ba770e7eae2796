// Command extdata-mcp is an MCP server that exposes the Azure DevOps
// extension data storage over stdio.
//
// Usage:
//
//	AZDO_ORG_URL=https://dev.azure.com/myorg AZDO_PAT=... extdata-mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "extdata": {
//	            "command": "extdata-mcp",
//	            "env": {
//	                "AZDO_ORG_URL": "https://dev.azure.com/myorg",
//	                "AZDO_PAT": "..."
//	            }
//	        }
//	    }
//	}
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/azdo-tools/extdata-mcp/azdo"
	"github.com/azdo-tools/extdata-mcp/tools"
)

const version = "1.0.0"

func main() {
	cfg := LoadConfig()
	setupLogging(cfg.LogLevel)

	// The client is built lazily so a missing organization URL surfaces as
	// a per-call error result instead of killing the server.
	provider := func(ctx context.Context) (azdo.DocumentClient, error) {
		if cfg.OrganizationURL == "" {
			return nil, fmt.Errorf("organization URL is not configured (set AZDO_ORG_URL)")
		}
		return azdo.NewRESTClient(cfg.OrganizationURL,
			azdo.WithAccessToken(cfg.AccessToken),
			azdo.WithUserAgent("extdata-mcp/"+version),
		)
	}

	slog.Info("starting extension data MCP server", "version", version)
	if err := tools.ServeStdio(provider,
		tools.WithName("extdata-mcp"),
		tools.WithVersion(version),
	); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// setupLogging routes logs to stderr; stdout carries the MCP protocol.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
