package sources

import "strings"

// hqDefault is the static thumbnail YouTube serves for every public video.
func hqDefault(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
}

// resolveURL makes mirror-relative and protocol-relative thumbnail URLs absolute.
func resolveURL(base, u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return strings.TrimRight(base, "/") + u
	}
	return u
}

// invThumb is the thumbnail shape shared by Invidious video and author entries.
type invThumb struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// pickQuality returns the first thumbnail matching the preferred qualities,
// falling back to the first entry.
func pickQuality(thumbs []invThumb, prefer ...string) string {
	for _, q := range prefer {
		for _, t := range thumbs {
			if t.Quality == q && t.URL != "" {
				return t.URL
			}
		}
	}
	for _, t := range thumbs {
		if t.URL != "" {
			return t.URL
		}
	}
	return ""
}

func strp(s string) *string { return &s }

func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
