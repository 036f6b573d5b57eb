package engine

import (
	"context"
	"strings"
	"time"
)

// Resolver answers metadata and search questions by falling back across the
// provider registry. It is immutable and safe for concurrent use.
type Resolver struct {
	registry        Registry
	credentials     CredentialResolver
	classifier      Classifier
	timeout         time.Duration
	searchLimit     int
	channelPageSize int
}

// Options configures NewResolver. Zero limits and timeout take package defaults.
type Options struct {
	Registry        Registry
	Credentials     CredentialResolver
	Classifier      Classifier // nil = KeywordClassifier over DefaultSensitiveTerms
	AttemptTimeout  time.Duration
	SearchLimit     int
	ChannelPageSize int
}

// NewResolver builds a Resolver from injected configuration.
func NewResolver(o Options) *Resolver {
	r := &Resolver{
		registry:        o.Registry,
		credentials:     o.Credentials,
		classifier:      o.Classifier,
		timeout:         o.AttemptTimeout,
		searchLimit:     o.SearchLimit,
		channelPageSize: o.ChannelPageSize,
	}
	if r.classifier == nil {
		r.classifier = NewKeywordClassifier(DefaultSensitiveTerms)
	}
	if r.timeout <= 0 {
		r.timeout = DefaultAttemptTimeout
	}
	if r.searchLimit <= 0 {
		r.searchLimit = DefaultSearchLimit
	}
	if r.channelPageSize <= 0 {
		r.channelPageSize = DefaultChannelPageSize
	}
	return r
}

// Registry exposes the provider list (read-only copy semantics).
func (r *Resolver) Registry() Registry { return r.registry }

// Credentials returns the resolver's credential source.
func (r *Resolver) Credentials() CredentialResolver { return r.credentials }

func (r *Resolver) limitFor(op Operation) int {
	switch op {
	case OpSearch:
		return r.searchLimit
	case OpChannelVideos:
		return r.channelPageSize
	}
	return 0
}

// FetchVideoMetadata resolves a video by ID. When every provider fails the
// result has every field nil and err is nil.
func (r *Resolver) FetchVideoMetadata(ctx context.Context, videoID string) (VideoMetadata, error) {
	if err := ValidateVideoID(videoID); err != nil {
		return VideoMetadata{}, err
	}
	res, err := dispatch(ctx, r, OpVideoMetadata, nil,
		func(d Descriptor) bool { return d.Video != nil },
		func(ctx context.Context, d Descriptor, req Request) (VideoMetadata, error) {
			return d.Video(ctx, req, videoID)
		})
	if err != nil || !res.ok {
		return VideoMetadata{}, err
	}
	return res.value, nil
}

// FetchChannelDetails resolves a channel by ID; nil when every provider fails.
func (r *Resolver) FetchChannelDetails(ctx context.Context, channelID string) (*ChannelDetails, error) {
	if err := ValidateChannelID(channelID); err != nil {
		return nil, err
	}
	res, err := dispatch(ctx, r, OpChannelDetails, nil,
		func(d Descriptor) bool { return d.Channel != nil },
		func(ctx context.Context, d Descriptor, req Request) (ChannelDetails, error) {
			return d.Channel(ctx, req, channelID)
		})
	if err != nil || !res.ok {
		return nil, err
	}
	cd := res.value
	return &cd, nil
}

// Search returns the first page of results for query, optionally narrowed by a
// category hint. Exhaustion yields an empty, non-nil slice.
func (r *Resolver) Search(ctx context.Context, query, categoryHint string) ([]SearchResultItem, error) {
	page, err := r.SearchPage(ctx, query, categoryHint, nil)
	return page.Items, err
}

// SearchPage is Search with pagination.
func (r *Resolver) SearchPage(ctx context.Context, query, categoryHint string, cursor *Cursor) (Page, error) {
	q := ApplyCategory(strings.TrimSpace(query), categoryHint)
	if q == "" {
		return Page{Items: []SearchResultItem{}}, nil
	}
	return r.listing(ctx, OpSearch, cursor,
		func(d Descriptor) bool { return d.Search != nil },
		func(ctx context.Context, d Descriptor, req Request) (Listing, error) {
			return d.Search(ctx, req, q)
		})
}

// ListChannelVideos lists a channel's uploads, newest first where the provider
// supports ordering. A cursor from a different provider restarts at page one.
func (r *Resolver) ListChannelVideos(ctx context.Context, channelID string, cursor *Cursor) (Page, error) {
	if err := ValidateChannelID(channelID); err != nil {
		return Page{Items: []SearchResultItem{}}, err
	}
	return r.listing(ctx, OpChannelVideos, cursor,
		func(d Descriptor) bool { return d.ChannelVideos != nil },
		func(ctx context.Context, d Descriptor, req Request) (Listing, error) {
			return d.ChannelVideos(ctx, req, channelID)
		})
}

// Explore returns the preset feed for a category (see Categories).
func (r *Resolver) Explore(ctx context.Context, category string) ([]SearchResultItem, error) {
	c, ok := LookupCategory(category)
	if !ok {
		c = Categories[0]
	}
	return r.Search(ctx, c.Feed, c.Name)
}

func (r *Resolver) listing(
	ctx context.Context,
	op Operation,
	cursor *Cursor,
	supports func(Descriptor) bool,
	call attemptFunc[Listing],
) (Page, error) {
	res, err := dispatch(ctx, r, op, cursor, supports, call)
	if err != nil || !res.ok {
		return Page{Items: []SearchResultItem{}}, err
	}
	items := res.value.Items
	if items == nil {
		items = []SearchResultItem{}
	}
	if err := annotate(ctx, r.classifier, items); err != nil {
		return Page{Items: []SearchResultItem{}}, err
	}
	return Page{
		Items:      items,
		NextCursor: NextCursor(res.sent, res.provider, res.value.Continuation, len(items)),
	}, nil
}
