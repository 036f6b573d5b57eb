package tubeserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/settings"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BuildFunc builds a resolver for the given API key override ("" = none).
type BuildFunc func(override string) *engine.Resolver

// Server holds the live resolver. Resolvers are immutable; changing the API key
// builds a new one and swaps it in, so in-flight calls finish on the old one.
type Server struct {
	resolver atomic.Pointer[engine.Resolver]
	build    BuildFunc
	store    settings.Store
}

// New builds the initial resolver from the stored override, if any.
// store may be nil, in which case key changes are not persisted.
func New(ctx context.Context, build BuildFunc, store settings.Store) *Server {
	s := &Server{build: build, store: store}
	override := ""
	if store != nil {
		v, err := store.Get(ctx, settings.KeyAPIKey)
		if err != nil {
			slog.Warn("settings: could not load api key override", slog.Any("error", err))
		}
		override = v
	}
	s.resolver.Store(build(override))
	return s
}

// Resolver returns the current resolver.
func (s *Server) Resolver() *engine.Resolver { return s.resolver.Load() }

// SetAPIKey persists the override and swaps in a resolver that uses it.
// An empty key clears the override.
func (s *Server) SetAPIKey(ctx context.Context, key string) (engine.CredentialResolver, error) {
	key = strings.TrimSpace(key)
	if s.store != nil {
		var err error
		if key == "" {
			err = s.store.Delete(ctx, settings.KeyAPIKey)
		} else {
			err = s.store.Set(ctx, settings.KeyAPIKey, key)
		}
		if err != nil {
			return engine.CredentialResolver{}, fmt.Errorf("persist api key: %w", err)
		}
	}
	r := s.build(key)
	s.resolver.Store(r)
	slog.Info("api key updated",
		slog.String("source", r.Credentials().Source()),
		slog.String("credential", r.Credentials().Resolve().String()),
	)
	return r.Credentials(), nil
}

// RegisterTools registers all YouTube tools on the given MCP server:
// video_metadata, channel_details, video_search, channel_videos, explore_feed, api_key_set.
func (s *Server) RegisterTools(server *mcp.Server) {
	s.registerVideoMetadata(server)
	s.registerChannelDetails(server)
	s.registerVideoSearch(server)
	s.registerChannelVideos(server)
	s.registerExploreFeed(server)
	s.registerAPIKeySet(server)
}
