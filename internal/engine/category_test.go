package engine

import "testing"

func TestApplyCategory(t *testing.T) {
	tests := []struct {
		name  string
		query string
		hint  string
		want  string
	}{
		{"no hint", "cats", "", "cats"},
		{"unknown hint ignored", "cats", "cooking", "cats"},
		{"keyword appended", "cats", "gaming", "cats gaming"},
		{"hint case-insensitive", "cats", "MUSIC", "cats music"},
		{"keyword already present", "retro gaming", "gaming", "retro gaming"},
		{"home adds nothing", "cats", "home", "cats"},
		{"empty query uses feed", "", "tech", "tech review unboxing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyCategory(tt.query, tt.hint); got != tt.want {
				t.Errorf("ApplyCategory(%q, %q) = %q, want %q", tt.query, tt.hint, got, tt.want)
			}
		})
	}
}

func TestLookupCategory(t *testing.T) {
	for _, name := range []string{"home", "trending", "gaming", "tech", "music", "sensitive"} {
		c, ok := LookupCategory(name)
		if !ok || c.Name != name || c.Feed == "" {
			t.Errorf("LookupCategory(%q) = %+v, %v", name, c, ok)
		}
	}
	if _, ok := LookupCategory("nope"); ok {
		t.Error("unknown category should not be found")
	}
	if Categories[0].Name != "home" {
		t.Errorf("default category = %q, want home", Categories[0].Name)
	}
}
