package engine

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Cache provides 2-tier caching for transcripts: L1 in-memory + L2 files on
// disk. L1 is fast but lost on restart. L2 survives restarts. One file per
// (videoID, lang) pair; lookups and stores never fail the caller.
var transcriptCache *tieredCache

// CacheTTL is the maximum age of a transcript entry. Fixed for the process.
const CacheTTL = 24 * time.Hour

// Cache metrics — atomic counters for thread-safe access.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type tieredCache struct {
	l1       sync.Map // key → *cacheEntry
	dir      string
	dirReady atomic.Bool // directory created
	degraded atomic.Bool // directory creation failed; cache is a no-op
}

type cacheEntry struct {
	text      string
	expiresAt time.Time
}

// cacheRecord is the on-disk format. Internal contract only.
type cacheRecord struct {
	Transcript string    `json:"transcript"`
	WrittenAt  time.Time `json:"written_at"`
}

// InitCache sets up the transcript cache rooted at dir. The directory itself
// is created lazily on first store, so a bad location degrades the cache to
// a no-op instead of failing startup.
func InitCache(dir string) {
	transcriptCache = &tieredCache{dir: dir}
	slog.Info("cache: initialized", slog.String("dir", dir), slog.Duration("ttl", CacheTTL))
}

// cacheKey builds a deterministic file stem from (videoID, lang).
func cacheKey(videoID, lang string) string {
	hash := sha256.Sum256([]byte(videoID + "|" + lang))
	return fmt.Sprintf("%x", hash[:12])
}

// ensureDir creates the cache directory on first use. Safe to race: MkdirAll
// is idempotent. Returns false when the cache is degraded.
func (c *tieredCache) ensureDir() bool {
	if c.degraded.Load() {
		return false
	}
	if c.dirReady.Load() {
		return true
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		slog.Warn("cache: directory init failed, caching disabled", slog.String("dir", c.dir), slog.Any("error", err))
		c.degraded.Store(true)
		return false
	}
	c.dirReady.Store(true)
	return true
}

func (c *tieredCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// CacheGet returns the cached transcript for (videoID, lang) if present and
// fresh. Expired entries are deleted, not served. A miss is never an error.
func CacheGet(videoID, lang string) (string, bool) {
	c := transcriptCache
	if c == nil || c.degraded.Load() {
		cacheMisses.Add(1)
		return "", false
	}
	key := cacheKey(videoID, lang)

	// L1 check
	if val, ok := c.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			cacheHits.Add(1)
			return entry.text, true
		}
		c.l1.Delete(key)
		os.Remove(c.path(key))
	}

	// L2 check
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		cacheMisses.Add(1)
		return "", false
	}
	var rec cacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		os.Remove(c.path(key))
		cacheMisses.Add(1)
		return "", false
	}
	expiresAt := rec.WrittenAt.Add(CacheTTL)
	if !time.Now().Before(expiresAt) {
		os.Remove(c.path(key))
		cacheMisses.Add(1)
		return "", false
	}

	cacheHits.Add(1)
	c.l1.Store(key, &cacheEntry{text: rec.Transcript, expiresAt: expiresAt})
	return rec.Transcript, true
}

// CacheSet stores the transcript in both tiers. Best-effort: write failures
// are logged and swallowed, never propagated.
func CacheSet(videoID, lang, text string) {
	c := transcriptCache
	if c == nil || !c.ensureDir() {
		return
	}
	key := cacheKey(videoID, lang)
	now := time.Now()

	c.l1.Store(key, &cacheEntry{text: text, expiresAt: now.Add(CacheTTL)})

	data, err := json.Marshal(cacheRecord{Transcript: text, WrittenAt: now})
	if err != nil {
		return
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		slog.Debug("cache: write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// CacheStats returns current cache hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}
