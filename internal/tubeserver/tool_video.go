package tubeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VideoMetadataInput struct {
	Video string `json:"video" jsonschema:"YouTube video ID or URL (watch, youtu.be, shorts, embed)"`
}

type VideoMetadataOutput struct {
	VideoID  string               `json:"video_id"`
	Found    bool                 `json:"found"`
	Metadata engine.VideoMetadata `json:"metadata"`
}

type ChannelDetailsInput struct {
	Channel string `json:"channel" jsonschema:"YouTube channel ID (UC...) or /channel/ URL"`
}

type ChannelDetailsOutput struct {
	ChannelID string                 `json:"channel_id"`
	Found     bool                   `json:"found"`
	Details   *engine.ChannelDetails `json:"details,omitempty"`
}

func (s *Server) registerVideoMetadata(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_metadata",
		Description: "Fetch title, description, tags and channel of a YouTube video. Tries the official Data API, then public Invidious mirrors, then YouTube's own endpoints. found=false with null fields means every source failed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input VideoMetadataInput) (*mcp.CallToolResult, VideoMetadataOutput, error) {
		id := engine.ExtractVideoID(input.Video)
		if id == "" {
			return nil, VideoMetadataOutput{}, fmt.Errorf("video: not a YouTube video ID or URL: %q", input.Video)
		}
		md, err := s.Resolver().FetchVideoMetadata(ctx, id)
		if err != nil {
			return nil, VideoMetadataOutput{}, err
		}
		return nil, VideoMetadataOutput{VideoID: id, Found: !md.Empty(), Metadata: md}, nil
	})
}

func (s *Server) registerChannelDetails(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_details",
		Description: "Fetch a YouTube channel's title, description, avatar and subscriber/video/view counts. Counts may be missing when only a mirror answered.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelDetailsInput) (*mcp.CallToolResult, ChannelDetailsOutput, error) {
		id := engine.ExtractChannelID(input.Channel)
		if id == "" {
			return nil, ChannelDetailsOutput{}, fmt.Errorf("channel: not a YouTube channel ID or URL: %q", input.Channel)
		}
		cd, err := s.Resolver().FetchChannelDetails(ctx, id)
		if err != nil {
			return nil, ChannelDetailsOutput{}, err
		}
		return nil, ChannelDetailsOutput{ChannelID: id, Found: cd != nil, Details: cd}, nil
	})
}
