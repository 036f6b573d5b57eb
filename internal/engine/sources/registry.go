package sources

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// NewRegistry assembles the provider list from configuration:
// Data API, then each Invidious mirror in configured order, then innertube
// (when enabled), then oEmbed.
func NewRegistry(ctx context.Context, cfg engine.Config) (engine.Registry, error) {
	cfg = cfg.WithDefaults()

	data, err := NewDataAPI(ctx, cfg.HTTPClient, cfg.YouTubeAPIBase)
	if err != nil {
		return engine.Registry{}, err
	}
	ds := []engine.Descriptor{data}

	for i, base := range cfg.InvidiousInstances {
		ds = append(ds, NewInvidious(base, 10+i, cfg.HTTPClient, cfg.InvidiousRPS))
	}
	if cfg.InnertubeEnabled {
		ds = append(ds, NewInnertube(cfg.HTTPClient, ""))
	}
	ds = append(ds, NewOEmbed(cfg.OEmbedProxy, cfg.HTTPClient))

	reg, err := engine.NewRegistry(ds...)
	if err != nil {
		return engine.Registry{}, err
	}
	ids := make([]string, 0, reg.Len())
	for _, d := range reg.Providers() {
		ids = append(ids, string(d.ID))
	}
	slog.Info("provider registry ready", slog.Any("providers", ids))
	return reg, nil
}
