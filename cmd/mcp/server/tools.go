package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tuberec/tuberec/cmd/mcp/client"
)

func (s *Server) handleSearchVideos(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters, err := parseSearchFilters(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	videos, err := s.client.SearchVideos(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search videos: %v", err)), nil
	}

	return formatVideosResult(videos)
}

func parseSearchFilters(args map[string]any) (client.SearchFilters, error) {
	filters := client.SearchFilters{
		Limit: 20, // Default limit
	}

	parseStringFilters(args, &filters)

	if err := parseDateFilters(args, &filters); err != nil {
		return filters, err
	}

	parsePaginationFilters(args, &filters)

	return filters, nil
}

func parseStringFilters(args map[string]any, filters *client.SearchFilters) {
	if query, ok := args["query"].(string); ok && query != "" {
		filters.Query = query
	}
	if channels, ok := args["channels"].(string); ok && channels != "" {
		filters.Channels = splitAndTrim(channels)
	}
	if excludeChannels, ok := args["exclude_channels"].(string); ok && excludeChannels != "" {
		filters.ExcludeChannels = splitAndTrim(excludeChannels)
	}
}

func parseDateFilters(args map[string]any, filters *client.SearchFilters) error {
	if after, ok := args["published_after"].(string); ok && after != "" {
		t, err := time.Parse(time.RFC3339, after)
		if err != nil {
			return fmt.Errorf("invalid published_after date format: %w", err)
		}
		filters.PublishedAfter = &t
	}
	if before, ok := args["published_before"].(string); ok && before != "" {
		t, err := time.Parse(time.RFC3339, before)
		if err != nil {
			return fmt.Errorf("invalid published_before date format: %w", err)
		}
		filters.PublishedBefore = &t
	}
	return nil
}

func parsePaginationFilters(args map[string]any, filters *client.SearchFilters) {
	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		filters.Limit = min(int(limit), 200)
	}
	if page, ok := args["page"].(float64); ok && page > 0 {
		filters.Page = int(page)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func (s *Server) handleGetVideo(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	videoID, ok := args["video_id"].(string)
	if !ok || videoID == "" {
		return mcp.NewToolResultError("video_id is required"), nil
	}

	video, err := s.client.GetVideo(ctx, videoID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get video: %v", err)), nil
	}

	return formatVideoResult(video)
}

func (s *Server) handleSemanticSearch(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	limit := 10
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = min(int(l), 100)
	}

	videos, err := s.client.SemanticSearch(ctx, text, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search videos: %v", err)), nil
	}

	return formatVideosResult(videos)
}

func (s *Server) handleGetRecommendations(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	rec, err := s.client.GetRecommendations(ctx, userID, query)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	data, err := json.MarshalIndent(rec.Videos, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format recommendations: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("%s\n\n%s", rec.Narrative, string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleRecordInteraction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	videoID, ok := args["video_id"].(string)
	if !ok || videoID == "" {
		return mcp.NewToolResultError("video_id is required"), nil
	}

	action, ok := args["action"].(string)
	if !ok || action == "" {
		errMsg := "action is required (one of 'CLICK', 'TOGGLE_LIKE', 'TOGGLE_DISLIKE', " +
			"'TOGGLE_WATCH_LATER', 'MARK_PARTIAL', 'MARK_FULL')"
		return mcp.NewToolResultError(errMsg), nil
	}

	interaction, err := s.client.RecordInteraction(ctx, userID, videoID, action)
	if err != nil {
		errMsg := fmt.Sprintf("failed to record interaction: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	data, err := json.MarshalIndent(interaction, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format interaction: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Recorded '%s' for video %s:\n\n%s", action, videoID, string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleDeleteInteraction(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	videoID, ok := args["video_id"].(string)
	if !ok || videoID == "" {
		return mcp.NewToolResultError("video_id is required"), nil
	}

	err := s.client.DeleteInteraction(ctx, userID, videoID)
	if err != nil {
		errMsg := fmt.Sprintf("failed to delete interaction: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Successfully deleted interaction for video %s", videoID)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleGetUser(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get user: %v", err)), nil
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format user: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleListHistory(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	limit := 50
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = min(int(l), 200)
	}

	interactions, err := s.client.ListHistory(ctx, userID, limit)
	if err != nil {
		errMsg := fmt.Sprintf("failed to list interaction history: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatInteractionsResult(interactions)
}

func (s *Server) handleListWatchLater(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	videos, err := s.client.ListWatchLater(ctx, userID)
	if err != nil {
		errMsg := fmt.Sprintf("failed to list watch later videos: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatVideosResult(videos)
}

func (s *Server) handleIngestVideos(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	topic, ok := args["topic"].(string)
	if !ok || topic == "" {
		return mcp.NewToolResultError("topic is required"), nil
	}

	maxResults := 0
	if m, ok := args["max_results"].(float64); ok && m > 0 {
		maxResults = min(int(m), 50)
	}

	saved, err := s.client.IngestVideos(ctx, topic, maxResults)
	if err != nil {
		errMsg := fmt.Sprintf("failed to ingest videos: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Ingestion complete: %d new video(s) saved for topic '%s'", saved, topic)
	return mcp.NewToolResultText(msg), nil
}

func formatVideosResult(videos []client.Video) (*mcp.CallToolResult, error) {
	if len(videos) == 0 {
		return mcp.NewToolResultText("No videos found."), nil
	}

	data, err := json.MarshalIndent(videos, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format videos: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d video(s):\n\n%s", len(videos), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatVideoResult(video *client.Video) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(video, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format video: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func formatInteractionsResult(interactions []client.Interaction) (*mcp.CallToolResult, error) {
	if len(interactions) == 0 {
		return mcp.NewToolResultText("No interactions found."), nil
	}

	data, err := json.MarshalIndent(interactions, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format interactions: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d interaction(s):\n\n%s", len(interactions), string(data))
	return mcp.NewToolResultText(msg), nil
}
