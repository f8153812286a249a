package engine

import (
	"fmt"
	"strings"
)

// InvalidInputError reports a malformed URL or video ID.
// Caller error: never retried, surfaced immediately.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// FetchError reports a failure of one transcript source.
// RateLimited is a diagnostic hint only — it never changes control flow.
type FetchError struct {
	Source      string
	RateLimited bool
	Err         error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// rateLimitMarkers are substrings YouTube uses when throttling or blocking.
var rateLimitMarkers = []string{"429", "too many requests", "blocked", "forbidden"}

// NewFetchError wraps err for the given source, flagging rate-limit-flavored
// messages for diagnostics.
func NewFetchError(source string, err error) *FetchError {
	msg := strings.ToLower(err.Error())
	limited := false
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			limited = true
			break
		}
	}
	return &FetchError{Source: source, RateLimited: limited, Err: err}
}

// RetrievalError is the terminal failure after primary retries and the
// fallback are both exhausted.
type RetrievalError struct {
	VideoID  string
	Lang     string
	Primary  error
	Fallback error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("transcript retrieval failed for %s (lang=%s): primary exhausted: %v; fallback: %v",
		e.VideoID, e.Lang, e.Primary, e.Fallback)
}

func (e *RetrievalError) Unwrap() error { return e.Primary }
