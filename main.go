// go_transcript — YouTube transcript MCP server.
//
// Exposes one MCP tool: get_transcript. Runs as HTTP MCP server or stdio
// transport. Transcripts come from the Innertube captions API with a raw
// timedtext scrape as fallback, behind a 24h on-disk cache.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/transcriptserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8894")
)

func main() {
	initEngine()

	slog.Info("starting go_transcript",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	retriever := engine.NewRetriever(sources.StructuredSource{}, sources.RawScrapeSource{})
	transcriptserver.RegisterTools(server, retriever)
	slog.Info("tools registered", slog.Int("count", 1))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	proxyURL := env.Str("PROXY_URL", "")

	c := engine.Config{ProxyURL: proxyURL}

	httpClient, err := engine.NewHTTPClient(proxyURL, 15*time.Second)
	if err != nil {
		slog.Warn("proxy config invalid, running direct", slog.Any("error", err))
		httpClient, _ = engine.NewHTTPClient("", 15*time.Second)
	}
	c.HTTPClient = httpClient

	bc, err := engine.NewBrowserClient(proxyURL)
	if err != nil {
		slog.Warn("browser client init failed, raw scrape uses plain client", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("browser client initialized")
	}

	engine.Init(c)
	engine.InitCache(filepath.Join(os.TempDir(), "go_transcript_cache"))
}
