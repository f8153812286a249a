package engine

import (
	"net/http"
)

// Config holds all engine configuration, injected from main.
// Proxy settings are resolved once at startup and stay read-only.
type Config struct {
	ProxyURL      string         // optional; applied to all outbound fetches
	HTTPClient    *http.Client   // proxy-aware shared client
	BrowserClient *BrowserClient // nil = raw scrape uses HTTPClient
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
