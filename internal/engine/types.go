package engine

// --- Core transcript types ---

// TranscriptLine is a single timed caption line from the structured source.
// Only Text survives into the output; timing is dropped when flattening.
type TranscriptLine struct {
	Text     string
	Start    float64
	Duration float64
}

// --- Tool I/O types (JSON) ---

type TranscriptInput struct {
	URLOrID string `json:"url_or_id" jsonschema:"YouTube video URL (watch or youtu.be) or raw 11-character video ID"`
	Lang    string `json:"lang,omitempty" jsonschema:"Caption language code (default: en)"`
}

type TranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Language   string `json:"language"`
	Transcript string `json:"transcript"`
	CharCount  int    `json:"char_count"`
	ElapsedMs  int64  `json:"elapsed_ms"`
}
