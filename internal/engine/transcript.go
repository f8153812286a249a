package engine

import (
	"context"
	"errors"
	"log/slog"
)

// TranscriptSource is one method of acquiring transcript text for a video.
// Implementations return *FetchError on any failure.
type TranscriptSource interface {
	Name() string
	Fetch(ctx context.Context, videoID, lang string) (string, error)
}

// Retriever sequences cache lookup, primary retries with backoff, and a
// single fallback attempt. Retries belong to the primary only: if the
// fallback is unreachable or the video has no captions, retrying it adds
// only latency.
type Retriever struct {
	Primary  TranscriptSource
	Fallback TranscriptSource
	Retry    RetryConfig
}

// NewRetriever builds a Retriever over the given sources with the default
// retry policy.
func NewRetriever(primary, fallback TranscriptSource) *Retriever {
	return &Retriever{Primary: primary, Fallback: fallback, Retry: DefaultRetryConfig}
}

// FetchTranscript returns the transcript for (videoID, lang), consulting the
// cache first and populating it on success. videoID must already be
// normalized. Failures surface as *InvalidInputError, context errors, or
// *RetrievalError.
func (r *Retriever) FetchTranscript(ctx context.Context, videoID, lang string) (string, error) {
	IncrTranscriptRequests()

	if text, ok := CacheGet(videoID, lang); ok {
		slog.Debug("transcript: cache hit", slog.String("id", videoID), slog.String("lang", lang))
		return text, nil
	}

	text, primaryErr := RetryDo(ctx, r.Retry, func() (string, error) {
		IncrPrimaryFetches()
		return r.Primary.Fetch(ctx, videoID, lang)
	})
	if primaryErr == nil {
		CacheSet(videoID, lang, text)
		return text, nil
	}

	// Validation errors and cancelled contexts will not self-resolve.
	var invErr *InvalidInputError
	if errors.As(primaryErr, &invErr) || errors.Is(primaryErr, context.Canceled) || errors.Is(primaryErr, context.DeadlineExceeded) {
		IncrFetchErrors()
		return "", primaryErr
	}

	var fetchErr *FetchError
	rateLimited := errors.As(primaryErr, &fetchErr) && fetchErr.RateLimited
	slog.Warn("transcript: primary exhausted, trying fallback",
		slog.String("id", videoID), slog.String("lang", lang),
		slog.Bool("rate_limited", rateLimited), slog.Any("error", primaryErr))

	IncrFallbackFetches()
	fbText, fbErr := r.Fallback.Fetch(ctx, videoID, lang)
	if fbErr == nil {
		CacheSet(videoID, lang, fbText)
		return fbText, nil
	}

	IncrFetchErrors()
	return "", &RetrievalError{VideoID: videoID, Lang: lang, Primary: primaryErr, Fallback: fbErr}
}
