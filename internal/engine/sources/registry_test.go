package sources

import (
	"context"
	"net/http"
	"testing"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

func TestNewRegistry_Order(t *testing.T) {
	cfg := engine.Config{
		InvidiousInstances: []string{"https://b.example", "https://a.example"},
		InnertubeEnabled:   true,
		HTTPClient:         http.DefaultClient,
	}
	reg, err := NewRegistry(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	want := []engine.ProviderID{
		DataAPIID,
		"invidious:b.example",
		"invidious:a.example",
		InnertubeID,
		OEmbedID,
	}
	got := reg.Providers()
	if len(got) != len(want) {
		t.Fatalf("got %d providers, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.ID != want[i] {
			t.Errorf("provider %d = %s, want %s", i, d.ID, want[i])
		}
	}
}

func TestNewRegistry_InnertubeDisabled(t *testing.T) {
	reg, err := NewRegistry(context.Background(), engine.Config{HTTPClient: http.DefaultClient})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := reg.Lookup(InnertubeID); ok {
		t.Error("innertube registered while disabled")
	}
	if reg.Len() != 2+len(engine.DefaultInvidiousInstances) {
		t.Errorf("Len() = %d", reg.Len())
	}
	if d, _ := reg.Lookup(OEmbedID); d.BaseURL != engine.DefaultOEmbedProxy {
		t.Errorf("oembed proxy = %q", d.BaseURL)
	}
}
