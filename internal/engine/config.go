package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey      string   // built-in default credential for the Data API
	YouTubeAPIBase     string   // empty = SDK default endpoint
	InvidiousInstances []string // mirror base URLs, attempted in order
	InvidiousRPS       float64  // per-instance request rate; <= 0 disables limiting
	OEmbedProxy        string   // CORS proxy prefix; the oEmbed URL is appended query-escaped
	InnertubeEnabled   bool
	AttemptTimeout     time.Duration
	SearchLimit        int
	ChannelPageSize    int
	SensitiveTerms     []string
	Classifier         string // "keyword" (default) or "llm"
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	SettingsDB         string // SQLite path; empty = ~/.go_tube/settings.db
	DatabaseURL        string // PostgreSQL settings store; overrides SettingsDB
	HTTPClient         *http.Client
}

// Defaults applied when a Config field is left zero.
const (
	DefaultAttemptTimeout  = 8 * time.Second
	DefaultSearchLimit     = 16
	DefaultChannelPageSize = 15
	DefaultOEmbedProxy     = "https://api.codetabs.com/v1/proxy?quest="
)

// DefaultInvidiousInstances is the mirror list used when none is configured.
var DefaultInvidiousInstances = []string{
	"https://invidious.projectsegfau.lt",
	"https://inv.tux.pizza",
	"https://invidious.jing.rocks",
	"https://vid.ufficio.eu.org",
	"https://invidious.nerdvpn.de",
}

// WithDefaults returns a copy of c with zero fields filled in.
func (c Config) WithDefaults() Config {
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = DefaultSearchLimit
	}
	if c.ChannelPageSize <= 0 {
		c.ChannelPageSize = DefaultChannelPageSize
	}
	if len(c.InvidiousInstances) == 0 {
		c.InvidiousInstances = append([]string(nil), DefaultInvidiousInstances...)
	}
	if c.OEmbedProxy == "" {
		c.OEmbedProxy = DefaultOEmbedProxy
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     60 * time.Second,
			},
		}
	}
	return c
}
