package engine

import "testing"

func TestCredentialResolver(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		builtin    string
		wantKey    string
		wantSource string
	}{
		{"override wins", "user", "default", "user", "override"},
		{"builtin fallback", "", "default", "default", "builtin"},
		{"blank override ignored", "   ", "default", "default", "builtin"},
		{"none", "", "", "", "none"},
		{"override trimmed", "  user \n", "", "user", "override"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCredentialResolver(tt.override, tt.builtin)
			c := r.Resolve()
			if c.Key() != tt.wantKey {
				t.Errorf("Key() = %q, want %q", c.Key(), tt.wantKey)
			}
			if c.Empty() != (tt.wantKey == "") {
				t.Errorf("Empty() = %v", c.Empty())
			}
			if r.Source() != tt.wantSource {
				t.Errorf("Source() = %q, want %q", r.Source(), tt.wantSource)
			}
		})
	}
}

func TestCredentialStringMasks(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "<none>"},
		{"short", "****"},
		{"AIzaSyExampleKey1234", "AIza…1234"},
	}
	for _, tt := range tests {
		if got := NewCredential(tt.key).String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if EmptyCredential.String() != "<none>" || !EmptyCredential.Empty() {
		t.Error("EmptyCredential must be empty")
	}
}
