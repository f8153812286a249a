package engine

import (
	"regexp"
	"strings"
)

// NormLang normalises a language field: empty string → "en".
func NormLang(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}

// UserAgentChrome is the fixed User-Agent for outbound caption fetches.
const UserAgentChrome = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// entityReplacer unescapes the five standard XML entity references.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// UnescapeEntities resolves &amp; &lt; &gt; &quot; &#39; to their characters.
func UnescapeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// FlattenTranscript joins caption lines into plain prose: each line trimmed,
// empty lines dropped, survivors joined with a single space. Timing data is
// discarded — the output contract is prose, not timed captions.
func FlattenTranscript(lines []TranscriptLine) string {
	var sb strings.Builder
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
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
