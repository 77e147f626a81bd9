package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// Register the video resource template
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"video://{video_id}",
			"Individual video from the recommendation catalogue",
			mcp.WithTemplateDescription(
				"Fetch a specific video by its video_id. Use this to get full "+
					"video details including title, description, channel, "+
					"duration, view count, publication date, and tags."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleVideoResource,
	)
}

func (s *Server) handleVideoResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	// Extract video_id from the URI (format: video://{video_id})
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "video://") {
		return nil, fmt.Errorf("invalid video URI format: %s", uri)
	}

	videoID := strings.TrimPrefix(uri, "video://")
	if videoID == "" {
		return nil, fmt.Errorf("missing video_id in URI: %s", uri)
	}

	video, err := s.client.GetVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video %s: %w", videoID, err)
	}

	data, err := json.MarshalIndent(video, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal video: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
