package engine

import "fmt"

// CursorKind tells which continuation scheme a cursor belongs to.
type CursorKind int

const (
	CursorInvalid CursorKind = iota
	CursorToken              // opaque token from an officially paginated provider
	CursorPage               // synthetic page counter for mirrors
)

// Cursor is a continuation tagged with the provider that issued it.
// Exactly one of Token or Page is set; build cursors with OpaqueToken or SyntheticPage.
type Cursor struct {
	Provider ProviderID `json:"provider"`
	Token    string     `json:"token,omitempty"`
	Page     int        `json:"page,omitempty"`
}

// OpaqueToken wraps a continuation token only provider p understands.
func OpaqueToken(p ProviderID, token string) *Cursor {
	return &Cursor{Provider: p, Token: token}
}

// SyntheticPage builds a page-counter cursor; pages below 1 are clamped to 1.
func SyntheticPage(p ProviderID, page int) *Cursor {
	if page < 1 {
		page = 1
	}
	return &Cursor{Provider: p, Page: page}
}

// Kind reports the cursor scheme. Nil and half-built cursors are CursorInvalid.
func (c *Cursor) Kind() CursorKind {
	switch {
	case c == nil || c.Provider == "":
		return CursorInvalid
	case c.Token != "" && c.Page == 0:
		return CursorToken
	case c.Token == "" && c.Page >= 1:
		return CursorPage
	}
	return CursorInvalid
}

// PageNumber returns the synthetic page to request; 1 unless c is a page cursor.
func (c *Cursor) PageNumber() int {
	if c.Kind() != CursorPage {
		return 1
	}
	return c.Page
}

// TokenValue returns the opaque token, or "" to request the first page.
func (c *Cursor) TokenValue() string {
	if c.Kind() != CursorToken {
		return ""
	}
	return c.Token
}

func (c *Cursor) String() string {
	switch c.Kind() {
	case CursorToken:
		return fmt.Sprintf("%s:token", c.Provider)
	case CursorPage:
		return fmt.Sprintf("%s:page:%d", c.Provider, c.Page)
	}
	return "<start>"
}

// CursorFor returns the cursor to send to provider p. A cursor issued by any other
// provider (or an invalid one) is dropped so p starts at its first page; the two
// schemes are never translated into each other.
func CursorFor(c *Cursor, p ProviderID) *Cursor {
	if c.Kind() == CursorInvalid || c.Provider != p {
		return nil
	}
	return c
}

// NextCursor computes the continuation after provider d returned itemCount items
// for a request made with current. continuation is the provider's own token, if any.
func NextCursor(current *Cursor, d Descriptor, continuation string, itemCount int) *Cursor {
	current = CursorFor(current, d.ID)
	switch {
	case d.Caps.OfficialPagination:
		if continuation == "" {
			return nil
		}
		return OpaqueToken(d.ID, continuation)
	case d.Caps.SyntheticPagination:
		// Mirrors report no totals: an empty page is the only end signal.
		if itemCount == 0 {
			return nil
		}
		return SyntheticPage(d.ID, current.PageNumber()+1)
	}
	return nil
}
