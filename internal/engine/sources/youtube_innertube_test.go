package sources

import (
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0.0" dur="1.4"> Hello </text>
	<text start="1.4" dur="0.6"></text>
	<text start="2.0" dur="1.1">world</text>
	<text start="3.1" dur="2.0">it&#39;s &quot;caption&quot; time &amp; more</text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	lines, err := parseTimedText([]byte(sampleTimedText))
	if err != nil {
		t.Fatalf("parseTimedText() error = %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0].Text != "Hello" {
		t.Errorf("lines[0].Text = %q, want %q", lines[0].Text, "Hello")
	}
	if lines[0].Start != 0.0 || lines[0].Duration != 1.4 {
		t.Errorf("lines[0] timing = (%v, %v), want (0, 1.4)", lines[0].Start, lines[0].Duration)
	}
	// xml decoding resolves the standard entities
	if lines[3].Text != `it's "caption" time & more` {
		t.Errorf("lines[3].Text = %q", lines[3].Text)
	}

	if got := engine.FlattenTranscript(lines[:3]); got != "Hello world" {
		t.Errorf("flattened = %q, want %q", got, "Hello world")
	}
}

func TestParseTimedTextMalformed(t *testing.T) {
	if _, err := parseTimedText([]byte("<transcript><text>unclosed")); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestPickTrack(t *testing.T) {
	manual := captionTrack{BaseURL: "https://yt/manual-en", LanguageCode: "en"}
	asr := captionTrack{BaseURL: "https://yt/asr-en", LanguageCode: "en", Kind: "asr"}
	korean := captionTrack{BaseURL: "https://yt/manual-ko", LanguageCode: "ko"}
	poToken := captionTrack{BaseURL: "https://yt/manual-en&exp=xpe", LanguageCode: "en"}

	tests := []struct {
		name    string
		tracks  []captionTrack
		lang    string
		wantURL string
		wantOK  bool
	}{
		{"manual preferred over asr", []captionTrack{asr, manual}, "en", "https://yt/manual-en", true},
		{"asr when no manual", []captionTrack{asr, korean}, "en", "https://yt/asr-en", true},
		{"language match", []captionTrack{manual, korean}, "ko", "https://yt/manual-ko", true},
		{"no track for language", []captionTrack{manual}, "ko", "", false},
		{"potoken track skipped", []captionTrack{poToken, asr}, "en", "https://yt/asr-en", true},
		{"only potoken tracks", []captionTrack{poToken}, "en", "", false},
		{"empty list", nil, "en", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickTrack(tt.tracks, tt.lang)
			if ok != tt.wantOK {
				t.Fatalf("pickTrack() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.BaseURL != tt.wantURL {
				t.Errorf("pickTrack() = %q, want %q", got.BaseURL, tt.wantURL)
			}
		})
	}
}

func TestNeedsPoToken(t *testing.T) {
	if !needsPoToken("https://yt/track?x=1&exp=xpe") {
		t.Error("expected PoToken requirement for &exp=xpe URL")
	}
	if needsPoToken("https://yt/track?x=1") {
		t.Error("did not expect PoToken requirement")
	}
}
