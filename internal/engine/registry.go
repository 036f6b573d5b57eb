package engine

import (
	"context"
	"fmt"
	"sort"
)

// ProviderID names one provider instance, e.g. "youtube-data" or "invidious:inv.tux.pizza".
type ProviderID string

// Capabilities advertise what a provider can do beyond the basic lookups.
type Capabilities struct {
	OfficialPagination  bool // issues opaque continuation tokens
	SyntheticPagination bool // accepts a client-side page counter
	Statistics          bool // reports subscriber/view counts
	RequiresCredential  bool // unusable without a non-empty Credential
}

// Request carries per-attempt inputs shared by every operation.
type Request struct {
	Credential Credential
	Cursor     *Cursor // already filtered: nil unless issued by this provider
	Limit      int     // page size hint; synthetic-page providers return their native page
}

// Per-operation request builders. A nil builder means the provider does not
// support that operation and the dispatcher skips it.
type (
	VideoFunc         func(ctx context.Context, req Request, videoID string) (VideoMetadata, error)
	ChannelFunc       func(ctx context.Context, req Request, channelID string) (ChannelDetails, error)
	SearchFunc        func(ctx context.Context, req Request, query string) (Listing, error)
	ChannelVideosFunc func(ctx context.Context, req Request, channelID string) (Listing, error)
)

// Descriptor is one entry of the provider registry.
type Descriptor struct {
	ID       ProviderID
	Priority int // lower is attempted first
	BaseURL  string
	Caps     Capabilities

	Video         VideoFunc
	Channel       ChannelFunc
	Search        SearchFunc
	ChannelVideos ChannelVideosFunc
}

// Registry is the ordered, read-only provider list.
type Registry struct {
	providers []Descriptor
}

// NewRegistry sorts descriptors by priority (stable, so equal priorities keep
// their given order) and rejects duplicate IDs.
func NewRegistry(ds ...Descriptor) (Registry, error) {
	seen := make(map[ProviderID]bool, len(ds))
	out := make([]Descriptor, 0, len(ds))
	for _, d := range ds {
		if d.ID == "" {
			return Registry{}, fmt.Errorf("registry: provider with empty ID")
		}
		if seen[d.ID] {
			return Registry{}, fmt.Errorf("registry: duplicate provider %q", d.ID)
		}
		seen[d.ID] = true
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return Registry{providers: out}, nil
}

// Providers returns a copy of the ordered descriptors.
func (r Registry) Providers() []Descriptor {
	return append([]Descriptor(nil), r.providers...)
}

// Len returns the number of providers.
func (r Registry) Len() int { return len(r.providers) }

// Lookup finds a provider by ID.
func (r Registry) Lookup(id ProviderID) (Descriptor, bool) {
	for _, d := range r.providers {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
