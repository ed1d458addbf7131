package transcripts

import "regexp"

// The two recognized URL shapes. The short-link form is checked first; if
// both could match, the short link wins.
var (
	shortLinkRE = regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`)
	watchLinkRE = regexp.MustCompile(`v=([a-zA-Z0-9_-]{11})`)
)

// ExtractVideoID extracts the 11-character video ID from a YouTube URL.
// Supports:
//   - https://youtu.be/VIDEO_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID
func ExtractVideoID(url string) (string, bool) {
	if m := shortLinkRE.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	if m := watchLinkRE.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}
