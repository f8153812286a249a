package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFetchErrorRateLimitClassification(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		limited bool
	}{
		{"429 status", "HTTP 429: quota", true},
		{"too many requests", "upstream said Too Many Requests", true},
		{"blocked", "request Blocked by consent wall", true},
		{"forbidden", "HTTP 403 Forbidden", true},
		{"generic failure", "connection reset by peer", false},
		{"not found", "HTTP 404", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := NewFetchError("innertube", errors.New(tt.msg))
			if fe.RateLimited != tt.limited {
				t.Errorf("RateLimited = %v, want %v for %q", fe.RateLimited, tt.limited, tt.msg)
			}
			if fe.Source != "innertube" {
				t.Errorf("Source = %q, want %q", fe.Source, "innertube")
			}
		})
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	fe := NewFetchError("timedtext", inner)
	if !errors.Is(fe, inner) {
		t.Error("FetchError must unwrap to the upstream error")
	}
}

func TestRetrievalErrorMessage(t *testing.T) {
	err := &RetrievalError{
		VideoID:  "dQw4w9WgXcQ",
		Lang:     "en",
		Primary:  errors.New("HTTP 503"),
		Fallback: errors.New("HTTP 404"),
	}
	msg := err.Error()
	for _, want := range []string{"dQw4w9WgXcQ", "HTTP 503", "HTTP 404"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
	if !errors.Is(err, err.Primary) {
		t.Error("RetrievalError must unwrap to the last primary error")
	}
}
