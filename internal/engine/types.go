package engine

// --- Canonical entities ---
//
// Every provider response is normalized into these shapes. Values are built fresh
// per call and never mutated after the dispatcher hands them back.

// VideoMetadata describes a single video. Nil fields mean no provider could supply them.
type VideoMetadata struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Keywords     []string `json:"keywords"`
	ChannelID    *string  `json:"channel_id"`
	ChannelTitle *string  `json:"channel_title"`
}

// Empty reports whether the metadata carries no data at all (the exhaustion result).
func (m VideoMetadata) Empty() bool {
	return m.Title == nil && m.Description == nil && m.Keywords == nil &&
		m.ChannelID == nil && m.ChannelTitle == nil
}

// ChannelDetails describes a channel. Counts are provider-reported strings and are
// not guaranteed to parse as numbers.
type ChannelDetails struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CustomURL       string `json:"custom_url,omitempty"`
	SubscriberCount string `json:"subscriber_count,omitempty"`
	VideoCount      string `json:"video_count,omitempty"`
	ViewCount       string `json:"view_count,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
}

// ItemKind discriminates search results.
type ItemKind string

const (
	KindVideo   ItemKind = "video"
	KindChannel ItemKind = "channel"
)

// SearchResultItem is one entry of a search or channel listing.
type SearchResultItem struct {
	ID           string   `json:"id"`
	Kind         ItemKind `json:"kind"`
	Title        string   `json:"title"`
	Thumbnail    string   `json:"thumbnail"`
	ChannelTitle string   `json:"channel_title"`
	PublishedAt  string   `json:"published_at,omitempty"` // RFC 3339
	Description  string   `json:"description,omitempty"`
	IsSensitive  bool     `json:"is_sensitive"`
}

// Listing is what a provider returns for search-like operations.
// Continuation is set only by providers that issue opaque tokens.
type Listing struct {
	Items        []SearchResultItem
	Continuation string
}

// Page is the caller-facing result of a paginated operation.
type Page struct {
	Items      []SearchResultItem `json:"items"`
	NextCursor *Cursor            `json:"next_cursor"`
}

// StrPtr returns a pointer to s, or nil for the empty string.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns *p or "" when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
