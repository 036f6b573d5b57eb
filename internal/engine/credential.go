package engine

import "strings"

// Credential is the key attached to authoritative-provider requests.
// The zero value is the empty sentinel.
type Credential struct {
	key string
}

// EmptyCredential means no key is available; credentialed providers are skipped.
var EmptyCredential = Credential{}

// NewCredential wraps a raw key. Surrounding whitespace is ignored.
func NewCredential(key string) Credential {
	return Credential{key: strings.TrimSpace(key)}
}

func (c Credential) Empty() bool { return c.key == "" }
func (c Credential) Key() string { return c.key }

// String masks the key so credentials never end up in logs verbatim.
func (c Credential) String() string {
	switch {
	case c.key == "":
		return "<none>"
	case len(c.key) <= 8:
		return "****"
	}
	return c.key[:4] + "…" + c.key[len(c.key)-4:]
}

// CredentialResolver picks between a locally stored override and the built-in default.
type CredentialResolver struct {
	override string
	builtin  string
}

// NewCredentialResolver captures both candidates at construction time.
func NewCredentialResolver(override, builtin string) CredentialResolver {
	return CredentialResolver{override: override, builtin: builtin}
}

// Resolve never fails: override first, then default, then EmptyCredential.
func (r CredentialResolver) Resolve() Credential {
	if c := NewCredential(r.override); !c.Empty() {
		return c
	}
	if c := NewCredential(r.builtin); !c.Empty() {
		return c
	}
	return EmptyCredential
}

// Source names where Resolve gets its key: "override", "builtin" or "none".
func (r CredentialResolver) Source() string {
	switch {
	case !NewCredential(r.override).Empty():
		return "override"
	case !NewCredential(r.builtin).Empty():
		return "builtin"
	}
	return "none"
}
