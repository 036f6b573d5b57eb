package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go_tube/internal/engine"
	"golang.org/x/time/rate"
)

// invidious is one public mirror. Mirrors share no state; each gets its own limiter.
type invidious struct {
	base    string
	hc      *http.Client
	limiter *rate.Limiter
}

// InvidiousID derives a provider ID from a mirror URL, e.g. "invidious:inv.tux.pizza".
func InvidiousID(base string) engine.ProviderID {
	host := base
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		host = u.Host
	}
	return engine.ProviderID("invidious:" + host)
}

// NewInvidious builds the descriptor for one mirror. rps <= 0 disables limiting.
func NewInvidious(base string, priority int, hc *http.Client, rps float64) engine.Descriptor {
	p := &invidious{base: strings.TrimRight(base, "/"), hc: hc}
	if rps > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return engine.Descriptor{
		ID:       InvidiousID(base),
		Priority: priority,
		BaseURL:  p.base,
		Caps: engine.Capabilities{
			SyntheticPagination: true,
			Statistics:          true,
		},
		Video:         p.video,
		Channel:       p.channel,
		Search:        p.search,
		ChannelVideos: p.channelVideos,
	}
}

func (p *invidious) get(ctx context.Context, path string, q url.Values, dst any) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limit: %w", engine.ErrTransport, err)
		}
	}
	u := p.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return engine.GetJSON(ctx, p.hc, u, nil, dst)
}

// --- wire shapes ---

type invVideo struct {
	Title           *string  `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"descriptionHtml"`
	Keywords        []string `json:"keywords"`
	Author          string   `json:"author"`
	AuthorID        string   `json:"authorId"`
	Error           string   `json:"error"`
}

type invChannel struct {
	Author           string     `json:"author"`
	AuthorID         string     `json:"authorId"`
	Description      string     `json:"description"`
	SubCount         *int64     `json:"subCount"`
	TotalViews       *int64     `json:"totalViews"`
	AuthorThumbnails []invThumb `json:"authorThumbnails"`
	Error            string     `json:"error"`
}

type invItem struct {
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	VideoID          string     `json:"videoId"`
	Author           string     `json:"author"`
	AuthorID         string     `json:"authorId"`
	Description      string     `json:"description"`
	Published        int64      `json:"published"`
	VideoThumbnails  []invThumb `json:"videoThumbnails"`
	AuthorThumbnails []invThumb `json:"authorThumbnails"`
}

type invChannelVideos struct {
	Videos *[]invItem `json:"videos"`
}

// --- operations ---

func (p *invidious) video(ctx context.Context, _ engine.Request, videoID string) (engine.VideoMetadata, error) {
	var v invVideo
	if err := p.get(ctx, "/api/v1/videos/"+url.PathEscape(videoID), nil, &v); err != nil {
		return engine.VideoMetadata{}, err
	}
	return normalizeInvVideo(v)
}

func (p *invidious) channel(ctx context.Context, _ engine.Request, channelID string) (engine.ChannelDetails, error) {
	var c invChannel
	if err := p.get(ctx, "/api/v1/channels/"+url.PathEscape(channelID), nil, &c); err != nil {
		return engine.ChannelDetails{}, err
	}
	return normalizeInvChannel(p.base, c)
}

func (p *invidious) search(ctx context.Context, req engine.Request, query string) (engine.Listing, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "all")
	q.Set("page", strconv.Itoa(req.Cursor.PageNumber()))
	var raw []invItem
	if err := p.get(ctx, "/api/v1/search", q, &raw); err != nil {
		return engine.Listing{}, err
	}
	return normalizeInvItems(p.base, raw)
}

func (p *invidious) channelVideos(ctx context.Context, req engine.Request, channelID string) (engine.Listing, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Cursor.PageNumber()))
	var resp invChannelVideos
	if err := p.get(ctx, "/api/v1/channels/"+url.PathEscape(channelID)+"/videos", q, &resp); err != nil {
		return engine.Listing{}, err
	}
	if resp.Videos == nil {
		return engine.Listing{}, engine.Malformed("invidious: channel videos without videos array")
	}
	return normalizeInvItems(p.base, *resp.Videos)
}

// --- normalizers ---

func normalizeInvVideo(v invVideo) (engine.VideoMetadata, error) {
	if v.Error != "" {
		return engine.VideoMetadata{}, engine.Malformed("invidious: %s", v.Error)
	}
	if v.Title == nil {
		return engine.VideoMetadata{}, engine.Malformed("invidious: video without title")
	}
	desc := v.Description
	if desc == "" && v.DescriptionHTML != "" {
		if md, err := htmltomarkdown.ConvertString(v.DescriptionHTML); err == nil {
			desc = strings.TrimSpace(md)
		}
	}
	return engine.VideoMetadata{
		Title:        strp(*v.Title),
		Description:  strp(desc),
		Keywords:     orEmpty(v.Keywords),
		ChannelID:    engine.StrPtr(v.AuthorID),
		ChannelTitle: engine.StrPtr(v.Author),
	}, nil
}

func normalizeInvChannel(base string, c invChannel) (engine.ChannelDetails, error) {
	if c.Error != "" {
		return engine.ChannelDetails{}, engine.Malformed("invidious: %s", c.Error)
	}
	if c.Author == "" {
		return engine.ChannelDetails{}, engine.Malformed("invidious: channel without author")
	}
	cd := engine.ChannelDetails{
		Title:       c.Author,
		Description: c.Description,
	}
	if c.SubCount != nil {
		cd.SubscriberCount = strconv.FormatInt(*c.SubCount, 10)
	}
	if c.TotalViews != nil {
		cd.ViewCount = strconv.FormatInt(*c.TotalViews, 10)
	}
	if len(c.AuthorThumbnails) > 0 {
		cd.AvatarURL = resolveURL(base, c.AuthorThumbnails[0].URL)
	}
	return cd, nil
}

// normalizeInvItems maps search and channel-video entries. Playlists and other
// entry types are ignored; entries of a known type without an ID are dropped, and
// a page consisting only of such entries is malformed. The mirror's page is kept
// whole: the next cursor advances by server page, so trimming would skip entries.
func normalizeInvItems(base string, raw []invItem) (engine.Listing, error) {
	items := make([]engine.SearchResultItem, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		switch r.Type {
		case "channel":
			if r.AuthorID == "" {
				dropped++
				continue
			}
			items = append(items, engine.SearchResultItem{
				ID:           r.AuthorID,
				Kind:         engine.KindChannel,
				Title:        r.Author,
				Thumbnail:    resolveURL(base, pickQuality(r.AuthorThumbnails)),
				ChannelTitle: r.Author,
				Description:  r.Description,
			})
		case "video", "shortVideo", "":
			if r.VideoID == "" {
				dropped++
				continue
			}
			thumb := resolveURL(base, pickQuality(r.VideoThumbnails, "high", "medium", "default"))
			if thumb == "" {
				thumb = hqDefault(r.VideoID)
			}
			item := engine.SearchResultItem{
				ID:           r.VideoID,
				Kind:         engine.KindVideo,
				Title:        r.Title,
				Thumbnail:    thumb,
				ChannelTitle: r.Author,
				Description:  r.Description,
			}
			if r.Published > 0 {
				item.PublishedAt = time.Unix(r.Published, 0).UTC().Format(time.RFC3339)
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 && dropped > 0 {
		return engine.Listing{}, engine.Malformed("invidious: %d entries without id", dropped)
	}
	return engine.Listing{Items: items}, nil
}
