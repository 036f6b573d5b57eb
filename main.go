// go_tube: YouTube metadata & search MCP server.
//
// Resolves video metadata, channel details, search and channel listings by
// falling back across the official Data API, public Invidious mirrors,
// YouTube's own web endpoints and oEmbed.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/anatolykoptev/go_tube/internal/settings"
	"github.com/anatolykoptev/go_tube/internal/tubeserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env")
	}
	mcpPort := env.Str("MCP_PORT", "8893")
	ctx := context.Background()

	cfg := loadConfig()

	reg, err := sources.NewRegistry(ctx, cfg)
	if err != nil {
		slog.Error("provider registry init failed", slog.Any("error", err))
		return
	}

	store, err := settings.Open(ctx, cfg.SettingsDB, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("settings store unavailable, api key changes will not persist", slog.Any("error", err))
	} else {
		defer store.Close()
	}

	classifier := engine.NewClassifier(cfg)
	build := func(override string) *engine.Resolver {
		return engine.NewResolver(engine.Options{
			Registry:        reg,
			Credentials:     engine.NewCredentialResolver(override, cfg.YouTubeAPIKey),
			Classifier:      classifier,
			AttemptTimeout:  cfg.AttemptTimeout,
			SearchLimit:     cfg.SearchLimit,
			ChannelPageSize: cfg.ChannelPageSize,
		})
	}
	ts := tubeserver.New(ctx, build, store)

	slog.Info("starting go_tube",
		slog.String("port", mcpPort),
		slog.Int("providers", reg.Len()),
		slog.String("credential", ts.Resolver().Credentials().Source()),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_tube",
		Version: version,
	}, nil)

	ts.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_tube",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func loadConfig() engine.Config {
	innertube, err := strconv.ParseBool(env.Str("INNERTUBE_ENABLED", "true"))
	if err != nil {
		innertube = true
	}
	c := engine.Config{
		YouTubeAPIKey:      env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIBase:     env.Str("YOUTUBE_API_BASE", ""),
		InvidiousInstances: env.List("INVIDIOUS_INSTANCES", ""),
		InvidiousRPS:       env.Float("INVIDIOUS_RPS", 2),
		OEmbedProxy:        env.Str("OEMBED_PROXY", engine.DefaultOEmbedProxy),
		InnertubeEnabled:   innertube,
		AttemptTimeout:     env.Duration("ATTEMPT_TIMEOUT", engine.DefaultAttemptTimeout),
		SearchLimit:        env.Int("SEARCH_LIMIT", engine.DefaultSearchLimit),
		ChannelPageSize:    env.Int("CHANNEL_PAGE_SIZE", engine.DefaultChannelPageSize),
		SensitiveTerms:     env.List("SENSITIVE_TERMS", ""),
		Classifier:         env.Str("CLASSIFIER", "keyword"),
		LLMAPIKey:          env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks: env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-2.5-flash"),
		SettingsDB:         env.Str("SETTINGS_DB", ""),
		DatabaseURL:        env.Str("DATABASE_URL", ""),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	return c.WithDefaults()
}
