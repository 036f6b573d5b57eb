package sources

import (
	"testing"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, in, want string
	}{
		{"https://m.example/", "/vi/x.jpg", "https://m.example/vi/x.jpg"},
		{"https://m.example", "//yt3.ggpht.com/a", "https://yt3.ggpht.com/a"},
		{"https://m.example", "https://i.ytimg.com/a", "https://i.ytimg.com/a"},
		{"https://m.example", "", ""},
	}
	for _, tt := range tests {
		if got := resolveURL(tt.base, tt.in); got != tt.want {
			t.Errorf("resolveURL(%q, %q) = %q, want %q", tt.base, tt.in, got, tt.want)
		}
	}
}

func TestPickQuality(t *testing.T) {
	thumbs := []invThumb{{Quality: "default", URL: "d"}, {Quality: "medium", URL: "m"}, {Quality: "high", URL: ""}}
	if got := pickQuality(thumbs, "high", "medium"); got != "m" {
		t.Errorf("pickQuality = %q, want m", got)
	}
	if got := pickQuality(thumbs, "maxres"); got != "d" {
		t.Errorf("fallback = %q, want d", got)
	}
	if got := pickQuality(nil); got != "" {
		t.Errorf("empty = %q", got)
	}
}

// The same video reported by two providers normalizes to the same item shape.
func TestNormalizedShapeIsProviderIndependent(t *testing.T) {
	inv, err := normalizeInvItems("https://m", []invItem{{Type: "video", VideoID: testVideoID, Title: "Song", Author: "Rick"}})
	if err != nil {
		t.Fatal(err)
	}
	scraped := videoRendererItem(ytVideoRenderer{VideoID: testVideoID, Title: ytText{SimpleText: "Song"}, OwnerText: ytText{SimpleText: "Rick"}})

	want := engine.SearchResultItem{
		ID:           testVideoID,
		Kind:         engine.KindVideo,
		Title:        "Song",
		Thumbnail:    hqDefault(testVideoID),
		ChannelTitle: "Rick",
	}
	for name, got := range map[string]engine.SearchResultItem{"invidious": inv.Items[0], "innertube": scraped} {
		if got != want {
			t.Errorf("%s item = %+v, want %+v", name, got, want)
		}
	}
}
