package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// RawScrapeSource hits the public /api/timedtext endpoint directly and
// extracts caption text by pattern matching. Last-resort path: no track
// negotiation, no player call, just the raw markup.
type RawScrapeSource struct{}

func (RawScrapeSource) Name() string { return "timedtext" }

// textSpanRe matches <text …>…</text> spans in a timedtext response.
// Deliberately a targeted extraction, not a general markup parser.
var textSpanRe = regexp.MustCompile(`(?s)<text[^>]*>(.*?)</text>`)

func (s RawScrapeSource) Fetch(ctx context.Context, videoID, lang string) (string, error) {
	endpoint := fmt.Sprintf("%s?v=%s&lang=%s", ytTimedTextURL, url.QueryEscape(videoID), url.QueryEscape(lang))

	body, err := rawGet(ctx, endpoint)
	if err != nil {
		return "", engine.NewFetchError(s.Name(), err)
	}

	text := extractTextSpans(string(body))
	if text == "" {
		return "", engine.NewFetchError(s.Name(), errors.New("no transcript content in timedtext response"))
	}
	return text, nil
}

// rawGet fetches the endpoint, preferring the Chrome-fingerprint client when
// configured — the plain timedtext endpoint is bot-sensitive.
func rawGet(ctx context.Context, endpoint string) ([]byte, error) {
	if err := engine.WaitYouTube(ctx); err != nil {
		return nil, err
	}

	if bc := engine.Cfg.BrowserClient; bc != nil {
		body, status, err := bc.Do(http.MethodGet, endpoint, engine.ChromeHeaders(), nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d fetching timedtext", status)
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching timedtext", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 512*1024))
}

// extractTextSpans pulls every <text> span out of a timedtext body: strip
// residual tags, unescape the five standard entities, join with a space.
func extractTextSpans(body string) string {
	matches := textSpanRe.FindAllStringSubmatch(body, -1)
	var sb strings.Builder
	for _, m := range matches {
		text := engine.UnescapeEntities(engine.CleanHTML(m[1]))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String()
}
