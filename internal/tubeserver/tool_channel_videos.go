package tubeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ChannelVideosInput struct {
	Channel string                `json:"channel" jsonschema:"YouTube channel ID (UC...) or /channel/ URL"`
	Cursor  *toolutil.CursorInput `json:"cursor,omitempty" jsonschema:"next_cursor from a previous call to fetch the next page"`
}

func (s *Server) registerChannelVideos(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_videos",
		Description: "List a YouTube channel's latest uploads, newest first. Pass next_cursor back as cursor to page.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelVideosInput) (*mcp.CallToolResult, ListingOutput, error) {
		id := engine.ExtractChannelID(input.Channel)
		if id == "" {
			return nil, ListingOutput{}, fmt.Errorf("channel: not a YouTube channel ID or URL: %q", input.Channel)
		}
		page, err := s.Resolver().ListChannelVideos(ctx, id, toolutil.ToCursor(input.Cursor))
		if err != nil {
			return nil, ListingOutput{}, err
		}
		return nil, listing("", page, 0), nil
	})
}
