package sources

import (
	"context"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// OEmbedID is the provider ID of the last-resort oEmbed lookup.
const OEmbedID engine.ProviderID = "oembed"

const oembedEndpoint = "https://www.youtube.com/oembed"

// oembed resolves titles through YouTube's oEmbed endpoint behind a CORS proxy.
// It only ever knows a video's title and channel name.
type oembed struct {
	proxy string // prefix; the oEmbed URL is appended query-escaped
	hc    *http.Client
}

// NewOEmbed builds the oEmbed descriptor. An empty proxy calls YouTube directly.
func NewOEmbed(proxy string, hc *http.Client) engine.Descriptor {
	p := &oembed{proxy: proxy, hc: hc}
	return engine.Descriptor{
		ID:       OEmbedID,
		Priority: 100,
		BaseURL:  proxy,
		Video:    p.video,
	}
}

type oembedResp struct {
	Title      *string `json:"title"`
	AuthorName string  `json:"author_name"`
	AuthorURL  string  `json:"author_url"`
}

func (p *oembed) target(videoID string) string {
	q := url.Values{}
	q.Set("url", "https://www.youtube.com/watch?v="+videoID)
	q.Set("format", "json")
	u := oembedEndpoint + "?" + q.Encode()
	if p.proxy == "" {
		return u
	}
	return p.proxy + url.QueryEscape(u)
}

func (p *oembed) video(ctx context.Context, _ engine.Request, videoID string) (engine.VideoMetadata, error) {
	var r oembedResp
	if err := engine.GetJSON(ctx, p.hc, p.target(videoID), nil, &r); err != nil {
		return engine.VideoMetadata{}, err
	}
	return normalizeOEmbed(r)
}

func normalizeOEmbed(r oembedResp) (engine.VideoMetadata, error) {
	if r.Title == nil {
		return engine.VideoMetadata{}, engine.Malformed("oembed: response without title")
	}
	return engine.VideoMetadata{
		Title:        strp(*r.Title),
		Keywords:     []string{},
		ChannelTitle: engine.StrPtr(r.AuthorName),
	}, nil
}
