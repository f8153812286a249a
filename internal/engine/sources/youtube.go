package sources

// YouTube implementation is split across three files by responsibility:
//   youtube_innertube.go — Innertube API types, constants, and low-level HTTP primitives
//   youtube_player.go    — structured source: /player → captionTracks → timed caption lines
//   youtube_timedtext.go — raw scrape source: /api/timedtext markup extraction
