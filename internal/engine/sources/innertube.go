package sources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anatolykoptev/go_tube/internal/engine"
	ytdl "github.com/kkdai/youtube/v2"
)

// InnertubeID is the provider ID for YouTube's own web endpoints.
const InnertubeID engine.ProviderID = "innertube"

const youtubeWeb = "https://www.youtube.com"

// innertube reads metadata the way the YouTube web player does: the player
// response for videos, the uploads playlist for channels and the search results
// page for queries. No credential, no statistics and no pagination.
type innertube struct {
	client *ytdl.Client
	hc     *http.Client
	web    string
}

// NewInnertube builds the innertube descriptor. web overrides the site root (tests).
func NewInnertube(hc *http.Client, web string) engine.Descriptor {
	if web == "" {
		web = youtubeWeb
	}
	p := &innertube{client: &ytdl.Client{HTTPClient: hc}, hc: hc, web: web}
	return engine.Descriptor{
		ID:            InnertubeID,
		Priority:      50,
		BaseURL:       web,
		Video:         p.video,
		Search:        p.search,
		ChannelVideos: p.channelVideos,
	}
}

func (p *innertube) video(ctx context.Context, _ engine.Request, videoID string) (engine.VideoMetadata, error) {
	v, err := p.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return engine.VideoMetadata{}, fmt.Errorf("%w: innertube video: %w", engine.ErrTransport, err)
	}
	return normalizeInnertubeVideo(v)
}

func (p *innertube) channelVideos(ctx context.Context, req engine.Request, channelID string) (engine.Listing, error) {
	pl, err := p.client.GetPlaylistContext(ctx, engine.UploadsPlaylistID(channelID))
	if err != nil {
		return engine.Listing{}, fmt.Errorf("%w: innertube uploads: %w", engine.ErrTransport, err)
	}
	return normalizeInnertubePlaylist(pl, req.Limit)
}

func normalizeInnertubeVideo(v *ytdl.Video) (engine.VideoMetadata, error) {
	if v == nil || v.ID == "" {
		return engine.VideoMetadata{}, engine.Malformed("innertube: empty player response")
	}
	return engine.VideoMetadata{
		Title:        strp(v.Title),
		Description:  strp(v.Description),
		Keywords:     []string{},
		ChannelID:    engine.StrPtr(v.ChannelID),
		ChannelTitle: engine.StrPtr(v.Author),
	}, nil
}

func normalizeInnertubePlaylist(pl *ytdl.Playlist, limit int) (engine.Listing, error) {
	if pl == nil {
		return engine.Listing{}, engine.Malformed("innertube: empty playlist response")
	}
	items := make([]engine.SearchResultItem, 0, len(pl.Videos))
	for _, e := range pl.Videos {
		if e == nil || e.ID == "" {
			continue
		}
		thumb := largestThumb(e.Thumbnails)
		if thumb == "" {
			thumb = hqDefault(e.ID)
		}
		items = append(items, engine.SearchResultItem{
			ID:           e.ID,
			Kind:         engine.KindVideo,
			Title:        e.Title,
			Thumbnail:    thumb,
			ChannelTitle: e.Author,
		})
		if limit > 0 && len(items) == limit {
			break
		}
	}
	if len(items) == 0 && len(pl.Videos) > 0 {
		return engine.Listing{}, engine.Malformed("innertube: playlist entries without id")
	}
	return engine.Listing{Items: items}, nil
}

func largestThumb(ts ytdl.Thumbnails) string {
	best, bestW := "", -1
	for _, t := range ts {
		if t.URL != "" && int(t.Width) > bestW {
			best, bestW = t.URL, int(t.Width)
		}
	}
	return best
}
