package tubeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultDescriptionChars = 300

type VideoSearchInput struct {
	Query            string                `json:"query" jsonschema:"Search keywords"`
	Category         string                `json:"category,omitempty" jsonschema:"Optional hint: home, trending, gaming, tech, music, sensitive"`
	Cursor           *toolutil.CursorInput `json:"cursor,omitempty" jsonschema:"next_cursor from a previous call to fetch the next page"`
	DescriptionChars int                   `json:"description_chars,omitempty" jsonschema:"Max description length per item (default 300, -1 for full)"`
}

// ListingOutput is shared by the list-shaped tools.
type ListingOutput struct {
	Query      string                    `json:"query,omitempty"`
	Count      int                       `json:"count"`
	Items      []engine.SearchResultItem `json:"items"`
	NextCursor *engine.Cursor            `json:"next_cursor,omitempty"`
}

type ExploreInput struct {
	Category string `json:"category,omitempty" jsonschema:"Feed: home (default), trending, gaming, tech, music, sensitive"`
}

func (s *Server) registerVideoSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_search",
		Description: "Search YouTube for videos and channels. Each item carries is_sensitive for titles that should be shown behind a warning. Pass next_cursor back as cursor to page.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoSearchInput) (*mcp.CallToolResult, ListingOutput, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, ListingOutput{}, fmt.Errorf("query is required")
		}
		page, err := s.Resolver().SearchPage(ctx, input.Query, toolutil.NormCategory(input.Category), toolutil.ToCursor(input.Cursor))
		if err != nil {
			return nil, ListingOutput{}, err
		}
		return nil, listing(input.Query, page, input.DescriptionChars), nil
	})
}

func (s *Server) registerExploreFeed(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "explore_feed",
		Description: "Browse a preset YouTube feed by category without typing a query. Unknown categories fall back to home.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ExploreInput) (*mcp.CallToolResult, ListingOutput, error) {
		cat := toolutil.NormCategory(input.Category)
		items, err := s.Resolver().Explore(ctx, cat)
		if err != nil {
			return nil, ListingOutput{}, err
		}
		return nil, listing(cat, engine.Page{Items: items}, 0), nil
	})
}

func listing(query string, page engine.Page, descChars int) ListingOutput {
	if descChars == 0 {
		descChars = defaultDescriptionChars
	}
	items := toolutil.ClampDescriptions(page.Items, descChars)
	return ListingOutput{
		Query:      query,
		Count:      len(items),
		Items:      items,
		NextCursor: page.NextCursor,
	}
}
