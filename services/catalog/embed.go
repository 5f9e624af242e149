package catalog

import (
	"net/url"
	"regexp"
	"strings"
)

const youtubeEmbedBase = "https://www.youtube.com/embed/"

// A bare YouTube video key: alphanumerics, dashes and underscores, at least
// six characters.
var youtubeKeyRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{6,}$`)

// ToYouTubeEmbed converts a raw trailer URL or bare video key into a
// consistent embeddable player URL. It is pure and never fails: anything
// unrecognizable maps to the empty string, which callers treat as "no
// trailer available". Inputs already in embed form pass through unchanged.
func ToYouTubeEmbed(urlOrKey string) string {
	if urlOrKey == "" {
		return ""
	}
	if youtubeKeyRe.MatchString(urlOrKey) {
		return youtubeEmbedBase + urlOrKey
	}

	parsed, err := url.Parse(urlOrKey)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	switch {
	case strings.Contains(host, "youtube.com"):
		if v := parsed.Query().Get("v"); v != "" {
			return youtubeEmbedBase + v
		}
		if strings.HasPrefix(parsed.Path, "/embed/") {
			return urlOrKey
		}
		parts := strings.Split(parsed.Path, "/")
		if last := parts[len(parts)-1]; last != "" {
			return youtubeEmbedBase + last
		}
	case strings.Contains(host, "youtu.be"):
		if id := strings.TrimPrefix(parsed.Path, "/"); id != "" {
			return youtubeEmbedBase + id
		}
	}
	return ""
}
