package extractor

import "regexp"

// videoIDPattern accepts watch, share and embed links. "watch?v=" is already
// covered by "v=" but is kept so the accepted set never shrinks.
var videoIDPattern = regexp.MustCompile(`(?:v=|youtu\.be/|embed/|watch\?v=)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID returns the first 11-character video ID found in url.
// It does not check that the video exists.
func ExtractVideoID(url string) (string, bool) {
	matches := videoIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

var youTubeLinkPattern = regexp.MustCompile(`(?i)(youtube\.com/watch\?v=|youtu\.be/)`)

// IsYouTubeLink is a cheap check for watch and share links in free text. It
// does not look for a valid video ID; use ExtractVideoID for that.
func IsYouTubeLink(text string) bool {
	return youTubeLinkPattern.MatchString(text)
}
