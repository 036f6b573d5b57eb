package tubeserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type APIKeySetInput struct {
	Key string `json:"key" jsonschema:"YouTube Data API v3 key. Empty string clears the override and reverts to the built-in key."`
}

type APIKeySetOutput struct {
	Source     string `json:"source"`     // override, builtin or none
	Credential string `json:"credential"` // masked
}

func (s *Server) registerAPIKeySet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "api_key_set",
		Description: "Set or clear the YouTube Data API key used before falling back to public mirrors. The key is stored locally and applies to subsequent calls.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input APIKeySetInput) (*mcp.CallToolResult, APIKeySetOutput, error) {
		cr, err := s.SetAPIKey(ctx, input.Key)
		if err != nil {
			return nil, APIKeySetOutput{}, err
		}
		return nil, APIKeySetOutput{Source: cr.Source(), Credential: cr.Resolve().String()}, nil
	})
}
