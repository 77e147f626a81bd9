// Package server provides the MCP server implementation.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tuberec/tuberec/cmd/mcp/client"
)

// Server is the MCP server for TubeRec.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"tuberec",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// search_videos - Search the video catalogue
	s.mcpServer.AddTool(mcp.NewTool("search_videos",
		mcp.WithDescription(
			"Search the video catalogue by title keyword, channel, or date range. "+
				"Returns a list of matching videos sorted by publication date "+
				"(newest first by default)."),
		mcp.WithString("query",
			mcp.Description("Search query to match in video titles"),
		),
		mcp.WithString("channels",
			mcp.Description("Comma-separated list of channel names to include"),
		),
		mcp.WithString("exclude_channels",
			mcp.Description("Comma-separated list of channel names to exclude"),
		),
		mcp.WithString("published_after",
			mcp.Description("Only include videos published after this date (RFC3339 format, e.g., '2024-01-01T00:00:00Z')"),
		),
		mcp.WithString("published_before",
			mcp.Description("Only include videos published before this date (RFC3339 format)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of videos to return (default: 20, max: 200)"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (1-indexed, default: 1)"),
		),
	), s.handleSearchVideos)

	// get_video - Get full video details
	s.mcpServer.AddTool(mcp.NewTool("get_video",
		mcp.WithDescription("Get full details of a specific video by its ID."),
		mcp.WithString("video_id",
			mcp.Required(),
			mcp.Description("The ID of the video to retrieve"),
		),
	), s.handleGetVideo)

	// semantic_search - Search by text similarity
	s.mcpServer.AddTool(mcp.NewTool("semantic_search",
		mcp.WithDescription(
			"Search for videos semantically similar to the given text. "+
				"Useful for finding content by describing a topic rather than matching keywords."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to find semantically similar videos for (max 100KB)"),
			mcp.MaxLength(102400),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of videos to return (default: 10, max: 100)"),
		),
	), s.handleSemanticSearch)

	// get_recommendations - Personalized recommendations
	s.mcpServer.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription(
			"Get a personalized recommendation narrative for a user and query. "+
				"Blends the query with the user's learned preference profile and "+
				"returns a written narrative alongside the recommended videos."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user to recommend videos for"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("What the user is in the mood to watch"),
		),
	), s.handleGetRecommendations)

	// record_interaction - Record a single interaction event
	s.mcpServer.AddTool(mcp.NewTool("record_interaction",
		mcp.WithDescription(
			"Record a user's interaction with a video. This updates the user's "+
				"learned preference profile and affects future recommendations. "+
				"Toggle actions flip state: sending TOGGLE_LIKE twice returns the "+
				"video to its unrated state."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user"),
		),
		mcp.WithString("video_id",
			mcp.Required(),
			mcp.Description("The ID of the video"),
		),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("The interaction event: 'CLICK', 'TOGGLE_LIKE', 'TOGGLE_DISLIKE', 'TOGGLE_WATCH_LATER', 'MARK_PARTIAL', or 'MARK_FULL'"),
		),
	), s.handleRecordInteraction)

	// delete_interaction - Remove an interaction record
	s.mcpServer.AddTool(mcp.NewTool("delete_interaction",
		mcp.WithDescription(
			"Delete a user's interaction record for a video. The preference "+
				"profile keeps any influence the interaction already had."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user"),
		),
		mcp.WithString("video_id",
			mcp.Required(),
			mcp.Description("The ID of the video"),
		),
	), s.handleDeleteInteraction)

	// get_user - User profile
	s.mcpServer.AddTool(mcp.NewTool("get_user",
		mcp.WithDescription("Get a user's profile by their ID."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user to retrieve"),
		),
	), s.handleGetUser)

	// list_history - User's interaction history
	s.mcpServer.AddTool(mcp.NewTool("list_history",
		mcp.WithDescription("List a user's interaction history, most recently modified first."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of interactions to return (default: 50, max: 200)"),
		),
	), s.handleListHistory)

	// list_watch_later - User's watch later list
	s.mcpServer.AddTool(mcp.NewTool("list_watch_later",
		mcp.WithDescription("List the videos on a user's watch later list."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user"),
		),
	), s.handleListWatchLater)

	// ingest_videos - Trigger catalogue ingestion
	s.mcpServer.AddTool(mcp.NewTool("ingest_videos",
		mcp.WithDescription(
			"Search the video platform for a topic and ingest any videos not "+
				"already in the catalogue. Returns the number of newly saved videos."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic to search the video platform for"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of search results to consider (default: 5, max: 50)"),
		),
	), s.handleIngestVideos)
}
