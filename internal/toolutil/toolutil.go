// Package toolutil provides shared helper functions for go_tube MCP tools.
package toolutil

import (
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// CursorInput is the wire form of a continuation cursor in tool arguments.
type CursorInput struct {
	Provider string `json:"provider" jsonschema:"Provider that issued the cursor (copy from next_cursor)"`
	Token    string `json:"token,omitempty" jsonschema:"Opaque continuation token"`
	Page     int    `json:"page,omitempty" jsonschema:"Synthetic page number"`
}

// ToCursor converts tool input to an engine cursor; nil stays nil.
func ToCursor(in *CursorInput) *engine.Cursor {
	if in == nil || in.Provider == "" {
		return nil
	}
	return &engine.Cursor{
		Provider: engine.ProviderID(in.Provider),
		Token:    in.Token,
		Page:     in.Page,
	}
}

// NormCategory lowercases a category hint: empty string → "".
func NormCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

// ClampDescriptions shortens item descriptions to maxRunes at a word boundary.
// maxRunes <= 0 leaves them untouched.
func ClampDescriptions(items []engine.SearchResultItem, maxRunes int) []engine.SearchResultItem {
	if maxRunes <= 0 {
		return items
	}
	for i := range items {
		items[i].Description = engine.TruncateAtWord(items[i].Description, maxRunes)
	}
	return items
}
