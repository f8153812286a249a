package sources

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// StructuredSource fetches captions through the ANDROID Innertube /player
// endpoint: caption track list → timed caption lines → flattened prose.
// Works from non-blocked (residential/cloud) IP addresses.
type StructuredSource struct{}

func (StructuredSource) Name() string { return "innertube" }

func (s StructuredSource) Fetch(ctx context.Context, videoID, lang string) (string, error) {
	lines, err := fetchPlayerCaptions(ctx, videoID, lang)
	if err != nil {
		return "", engine.NewFetchError(s.Name(), err)
	}
	text := engine.FlattenTranscript(lines)
	if text == "" {
		return "", engine.NewFetchError(s.Name(), errors.New("empty transcript"))
	}
	return text, nil
}

func fetchPlayerCaptions(ctx context.Context, videoID, lang string) ([]engine.TranscriptLine, error) {
	playerResp, err := postPlayer(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if playerResp.Captions == nil {
		reason := ""
		if playerResp.PlayabilityStatus != nil {
			reason = playerResp.PlayabilityStatus.Reason
		}
		if reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", reason)
		}
		return nil, errors.New("no captions in player response")
	}
	tracks := playerResp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks")
	}
	track, ok := pickTrack(tracks, lang)
	if !ok {
		return nil, fmt.Errorf("no usable caption track for language %q", lang)
	}
	return fetchTimedTextLines(ctx, track.BaseURL)
}
