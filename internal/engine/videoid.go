package engine

import (
	"net/url"
	"regexp"
	"strings"
)

// videoIDRe matches a canonical 11-character YouTube video ID.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// NormalizeVideoID parses a share URL, watch URL, or raw ID into a canonical
// video ID. The result always matches videoIDRe. Pure function.
func NormalizeVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", &InvalidInputError{Input: input, Reason: "empty"}
	}

	if u, err := url.Parse(input); err == nil && u.Host != "" {
		switch {
		case u.Host == "youtu.be":
			id := strings.Trim(u.Path, "/")
			if !videoIDRe.MatchString(id) {
				return "", &InvalidInputError{Input: input, Reason: "no video ID in short URL path"}
			}
			return id, nil
		case strings.Contains(u.Host, "youtube.com"):
			id := u.Query().Get("v")
			if id == "" {
				return "", &InvalidInputError{Input: input, Reason: "missing v parameter"}
			}
			if !videoIDRe.MatchString(id) {
				return "", &InvalidInputError{Input: input, Reason: "malformed v parameter"}
			}
			return id, nil
		default:
			return "", &InvalidInputError{Input: input, Reason: "unrecognized host"}
		}
	}

	// Not a URL — accept only an exact raw video ID.
	if videoIDRe.MatchString(input) {
		return input, nil
	}
	return "", &InvalidInputError{Input: input, Reason: "not a URL or 11-character video ID"}
}
