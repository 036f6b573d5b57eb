package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// Search through the results page: the server embeds the first page of results
// as a JSON blob assigned to ytInitialData.

const ytInitialDataMarker = "var ytInitialData = "

type ytText struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t ytText) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var sb strings.Builder
	for _, r := range t.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

type ytThumbs struct {
	Thumbnails []struct {
		URL   string `json:"url"`
		Width int    `json:"width"`
	} `json:"thumbnails"`
}

func (t ytThumbs) largest() string {
	best, bestW := "", -1
	for _, th := range t.Thumbnails {
		if th.URL != "" && th.Width > bestW {
			best, bestW = th.URL, th.Width
		}
	}
	return best
}

type ytVideoRenderer struct {
	VideoID            string   `json:"videoId"`
	Title              ytText   `json:"title"`
	OwnerText          ytText   `json:"ownerText"`
	DescriptionSnippet *ytText  `json:"descriptionSnippet"`
	Thumbnail          ytThumbs `json:"thumbnail"`
}

type ytChannelRenderer struct {
	ChannelID          string   `json:"channelId"`
	Title              ytText   `json:"title"`
	DescriptionSnippet *ytText  `json:"descriptionSnippet"`
	Thumbnail          ytThumbs `json:"thumbnail"`
}

func (p *innertube) search(ctx context.Context, req engine.Request, query string) (engine.Listing, error) {
	body, err := p.fetchResultsPage(ctx, query)
	if err != nil {
		return engine.Listing{}, err
	}
	return parseResultsPage(body, req.Limit)
}

func (p *innertube) fetchResultsPage(ctx context.Context, query string) ([]byte, error) {
	u := strings.TrimRight(p.web, "/") + "/results?search_query=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrTransport, err)
	}
	req.Header.Set("User-Agent", engine.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: results page: %w", engine.ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, &engine.StatusError{StatusCode: resp.StatusCode, Body: snippet}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read results page: %w", engine.ErrTransport, err)
	}
	return body, nil
}

// parseResultsPage pulls video and channel renderers out of the embedded data.
func parseResultsPage(body []byte, limit int) (engine.Listing, error) {
	idx := bytes.Index(body, []byte(ytInitialDataMarker))
	if idx < 0 {
		return engine.Listing{}, engine.Malformed("innertube: ytInitialData not found")
	}
	data := extractJSON(body[idx+len(ytInitialDataMarker):])
	if data == nil {
		return engine.Listing{}, engine.Malformed("innertube: unterminated ytInitialData")
	}
	return engine.Listing{Items: extractRenderers(data, limit)}, nil
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr, escaped := false, false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// extractRenderers recursively walks ytInitialData in document order.
func extractRenderers(data []byte, limit int) []engine.SearchResultItem {
	items := []engine.SearchResultItem{}
	full := func() bool { return limit > 0 && len(items) >= limit }

	var walk func(v json.RawMessage)
	walk = func(v json.RawMessage) {
		if full() {
			return
		}
		if keys, vals, ok := objectFields(v); ok {
			for i, k := range keys {
				switch k {
				case "videoRenderer":
					var vr ytVideoRenderer
					if json.Unmarshal(vals[i], &vr) == nil && vr.VideoID != "" {
						items = append(items, videoRendererItem(vr))
					}
					return
				case "channelRenderer":
					var cr ytChannelRenderer
					if json.Unmarshal(vals[i], &cr) == nil && cr.ChannelID != "" {
						items = append(items, channelRendererItem(cr))
					}
					return
				}
			}
			for _, val := range vals {
				if full() {
					return
				}
				walk(val)
			}
			return
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(v, &arr); err == nil {
			for _, item := range arr {
				if full() {
					return
				}
				walk(item)
			}
		}
	}
	walk(data)
	return items
}

// objectFields decodes a JSON object keeping its key order.
func objectFields(v json.RawMessage) ([]string, []json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(v))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, nil, false
	}
	var keys []string
	var vals []json.RawMessage
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, nil, false
		}
		k, _ := kt.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, false
		}
		keys = append(keys, k)
		vals = append(vals, raw)
	}
	return keys, vals, true
}

func videoRendererItem(vr ytVideoRenderer) engine.SearchResultItem {
	item := engine.SearchResultItem{
		ID:           vr.VideoID,
		Kind:         engine.KindVideo,
		Title:        vr.Title.String(),
		Thumbnail:    vr.Thumbnail.largest(),
		ChannelTitle: vr.OwnerText.String(),
	}
	if item.Thumbnail == "" {
		item.Thumbnail = hqDefault(vr.VideoID)
	}
	if vr.DescriptionSnippet != nil {
		item.Description = vr.DescriptionSnippet.String()
	}
	return item
}

func channelRendererItem(cr ytChannelRenderer) engine.SearchResultItem {
	item := engine.SearchResultItem{
		ID:           cr.ChannelID,
		Kind:         engine.KindChannel,
		Title:        cr.Title.String(),
		Thumbnail:    resolveURL("", cr.Thumbnail.largest()),
		ChannelTitle: cr.Title.String(),
	}
	if cr.DescriptionSnippet != nil {
		item.Description = cr.DescriptionSnippet.String()
	}
	return item
}
