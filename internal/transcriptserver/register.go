// Package transcriptserver registers the go_transcript MCP tools.
package transcriptserver

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/anatolykoptev/go-kit/strutil"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers transcript tools on the given MCP server.
func RegisterTools(server *mcp.Server, retriever *engine.Retriever) {
	registerGetTranscript(server, retriever)
}

func registerGetTranscript(server *mcp.Server, retriever *engine.Retriever) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the plain-text transcript of a YouTube video. Accepts a watch URL, a youtu.be share URL, or a raw 11-character video ID, plus an optional caption language code (default: en). Returns the transcript with video ID, language, character count, and elapsed time.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
		if input.URLOrID == "" {
			return nil, engine.TranscriptOutput{}, errors.New("url_or_id is required")
		}

		videoID, err := engine.NormalizeVideoID(input.URLOrID)
		if err != nil {
			return nil, engine.TranscriptOutput{}, err
		}
		lang := engine.NormLang(input.Lang)

		start := time.Now()
		var text string
		err = engine.TrackOperation(ctx, "get_transcript", func(ctx context.Context) error {
			var ferr error
			text, ferr = retriever.FetchTranscript(ctx, videoID, lang)
			return ferr
		})
		if err != nil {
			slog.Warn("get_transcript failed",
				slog.String("id", videoID), slog.String("lang", lang), slog.Any("error", err))
			return nil, engine.TranscriptOutput{}, err
		}

		slog.Info("get_transcript ok",
			slog.String("id", videoID), slog.String("lang", lang),
			slog.Int("chars", len(text)),
			slog.String("preview", strutil.TruncateWith(text, 80, "...")))

		return nil, engine.TranscriptOutput{
			VideoID:    videoID,
			Language:   lang,
			Transcript: text,
			CharCount:  utf8.RuneCountInString(text),
			ElapsedMs:  time.Since(start).Milliseconds(),
		}, nil
	})
}
