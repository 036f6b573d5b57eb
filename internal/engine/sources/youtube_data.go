package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DataAPIID is the provider ID of the official YouTube Data API v3.
const DataAPIID engine.ProviderID = "youtube-data"

// maxDataResults is the largest page search.list accepts.
const maxDataResults = 50

func dataMaxResults(limit int) int64 {
	return int64(max(1, min(limit, maxDataResults)))
}

// dataAPI talks to the official API through the generated client. The key is
// attached per call so one service serves every credential.
type dataAPI struct {
	svc *youtube.Service
}

func newDataAPI(ctx context.Context, hc *http.Client, endpoint string) (*dataAPI, error) {
	opts := []option.ClientOption{option.WithHTTPClient(hc)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube data service: %w", err)
	}
	return &dataAPI{svc: svc}, nil
}

// NewDataAPI builds the Data API descriptor. endpoint overrides the API root (tests).
func NewDataAPI(ctx context.Context, hc *http.Client, endpoint string) (engine.Descriptor, error) {
	p, err := newDataAPI(ctx, hc, endpoint)
	if err != nil {
		return engine.Descriptor{}, err
	}
	return engine.Descriptor{
		ID:       DataAPIID,
		Priority: 0,
		BaseURL:  endpoint,
		Caps: engine.Capabilities{
			OfficialPagination: true,
			Statistics:         true,
			RequiresCredential: true,
		},
		Video:         p.video,
		Channel:       p.channel,
		Search:        p.search,
		ChannelVideos: p.channelVideos,
	}, nil
}

func keyParam(req engine.Request) googleapi.CallOption {
	return googleapi.QueryParameter("key", req.Credential.Key())
}

func (p *dataAPI) video(ctx context.Context, req engine.Request, videoID string) (engine.VideoMetadata, error) {
	call := p.svc.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx)
	resp, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (*youtube.VideoListResponse, error) {
		return call.Do(keyParam(req))
	})
	if err != nil {
		return engine.VideoMetadata{}, dataErr(err)
	}
	return normalizeDataVideo(resp)
}

func (p *dataAPI) channel(ctx context.Context, req engine.Request, channelID string) (engine.ChannelDetails, error) {
	call := p.svc.Channels.List([]string{"snippet", "statistics"}).Id(channelID).Context(ctx)
	resp, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (*youtube.ChannelListResponse, error) {
		return call.Do(keyParam(req))
	})
	if err != nil {
		return engine.ChannelDetails{}, dataErr(err)
	}
	return normalizeDataChannel(resp)
}

func (p *dataAPI) search(ctx context.Context, req engine.Request, query string) (engine.Listing, error) {
	call := p.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video,channel").
		MaxResults(dataMaxResults(req.Limit)).
		Context(ctx)
	if tok := req.Cursor.TokenValue(); tok != "" {
		call = call.PageToken(tok)
	}
	resp, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (*youtube.SearchListResponse, error) {
		return call.Do(keyParam(req))
	})
	if err != nil {
		return engine.Listing{}, dataErr(err)
	}
	return normalizeDataSearch(resp)
}

func (p *dataAPI) channelVideos(ctx context.Context, req engine.Request, channelID string) (engine.Listing, error) {
	call := p.svc.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(dataMaxResults(req.Limit)).
		Context(ctx)
	if tok := req.Cursor.TokenValue(); tok != "" {
		call = call.PageToken(tok)
	}
	resp, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() (*youtube.SearchListResponse, error) {
		return call.Do(keyParam(req))
	})
	if err != nil {
		return engine.Listing{}, dataErr(err)
	}
	return normalizeDataSearch(resp)
}

// dataErr maps client errors onto the failure taxonomy.
func dataErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &engine.StatusError{StatusCode: gerr.Code, Body: []byte(gerr.Message)}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return engine.Malformed("youtube data: %v", err)
	}
	return fmt.Errorf("%w: youtube data: %w", engine.ErrTransport, err)
}

// --- normalizers ---

func normalizeDataVideo(resp *youtube.VideoListResponse) (engine.VideoMetadata, error) {
	if resp == nil || len(resp.Items) == 0 {
		return engine.VideoMetadata{}, engine.Malformed("youtube data: video not found")
	}
	sn := resp.Items[0].Snippet
	if sn == nil {
		return engine.VideoMetadata{}, engine.Malformed("youtube data: video without snippet")
	}
	return engine.VideoMetadata{
		Title:        strp(sn.Title),
		Description:  strp(sn.Description),
		Keywords:     orEmpty(sn.Tags),
		ChannelID:    engine.StrPtr(sn.ChannelId),
		ChannelTitle: engine.StrPtr(sn.ChannelTitle),
	}, nil
}

func normalizeDataChannel(resp *youtube.ChannelListResponse) (engine.ChannelDetails, error) {
	if resp == nil || len(resp.Items) == 0 {
		return engine.ChannelDetails{}, engine.Malformed("youtube data: channel not found")
	}
	ch := resp.Items[0]
	if ch.Snippet == nil {
		return engine.ChannelDetails{}, engine.Malformed("youtube data: channel without snippet")
	}
	cd := engine.ChannelDetails{
		Title:       ch.Snippet.Title,
		Description: ch.Snippet.Description,
		CustomURL:   ch.Snippet.CustomUrl,
		AvatarURL:   dataThumb(ch.Snippet.Thumbnails, "medium", "high", "default"),
	}
	if st := ch.Statistics; st != nil {
		if !st.HiddenSubscriberCount {
			cd.SubscriberCount = strconv.FormatUint(st.SubscriberCount, 10)
		}
		cd.VideoCount = strconv.FormatUint(st.VideoCount, 10)
		cd.ViewCount = strconv.FormatUint(st.ViewCount, 10)
	}
	return cd, nil
}

func normalizeDataSearch(resp *youtube.SearchListResponse) (engine.Listing, error) {
	if resp == nil {
		return engine.Listing{}, engine.Malformed("youtube data: empty search response")
	}
	items := make([]engine.SearchResultItem, 0, len(resp.Items))
	for _, r := range resp.Items {
		if r == nil || r.Id == nil || r.Snippet == nil {
			continue
		}
		item := engine.SearchResultItem{
			Title:        r.Snippet.Title,
			ChannelTitle: r.Snippet.ChannelTitle,
			PublishedAt:  r.Snippet.PublishedAt,
			Description:  r.Snippet.Description,
		}
		switch {
		case r.Id.ChannelId != "" && (r.Id.VideoId == "" || strings.HasSuffix(r.Id.Kind, "#channel")):
			item.ID, item.Kind = r.Id.ChannelId, engine.KindChannel
			item.Thumbnail = dataThumb(r.Snippet.Thumbnails, "high", "medium", "default")
		case r.Id.VideoId != "":
			item.ID, item.Kind = r.Id.VideoId, engine.KindVideo
			item.Thumbnail = dataThumb(r.Snippet.Thumbnails, "high", "medium", "default")
			if item.Thumbnail == "" {
				item.Thumbnail = hqDefault(item.ID)
			}
		default:
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 && len(resp.Items) > 0 {
		return engine.Listing{}, engine.Malformed("youtube data: no item carries a video or channel id")
	}
	return engine.Listing{Items: items, Continuation: resp.NextPageToken}, nil
}

func dataThumb(td *youtube.ThumbnailDetails, prefer ...string) string {
	if td == nil {
		return ""
	}
	for _, q := range prefer {
		var t *youtube.Thumbnail
		switch q {
		case "high":
			t = td.High
		case "medium":
			t = td.Medium
		case "default":
			t = td.Default
		}
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
