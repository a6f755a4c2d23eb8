package services

import "strings"

const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	loomEmbedBase    = "https://www.loom.com/embed/"
)

// ResolveEmbedURL converts a YouTube or Loom share link into the provider's
// embeddable player URL. Other links are returned unchanged. The extracted id
// is not checked, so a malformed link yields a player that fails to load.
func ResolveEmbedURL(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "youtu.be"):
		return youtubeEmbedBase + segmentAfter(rawURL, "youtu.be/", "?")
	case strings.Contains(rawURL, "youtube.com"):
		return youtubeEmbedBase + segmentAfter(rawURL, "v=", "&")
	case strings.Contains(rawURL, "loom.com"):
		return loomEmbedBase + segmentAfter(rawURL, "share/", "?")
	default:
		return rawURL
	}
}

// segmentAfter returns the text following the first marker, cut at the first
// terminator. It is empty when the marker is missing.
func segmentAfter(s, marker, terminator string) string {
	_, rest, found := strings.Cut(s, marker)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(rest, terminator)
	return id
}
