// Package client provides an HTTP client for the TubeRec API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Video represents a video from the recommendation catalogue.
type Video struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChannelName     string    `json:"channel_name"`
	DurationSeconds int       `json:"duration_seconds"`
	ViewCount       int64     `json:"view_count"`
	PublishedAt     time.Time `json:"published_at"`
	Tags            string    `json:"tags"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// Interaction represents a user's interaction state with a video.
type Interaction struct {
	UserID       string    `json:"user_id"`
	VideoID      string    `json:"video_id"`
	LikeStatus   string    `json:"like_status"`
	WatchStatus  string    `json:"watch_status"`
	WatchLater   bool      `json:"watch_later"`
	Clicked      bool      `json:"clicked"`
	LastModified time.Time `json:"last_modified"`
}

// User represents a user profile.
type User struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recommendation is a narrative paired with the videos it describes.
type Recommendation struct {
	Narrative string  `json:"narrative"`
	Videos    []Video `json:"videos"`
}

// VideosResponse represents the paginated response for video lists.
type VideosResponse struct {
	Data     []Video  `json:"data"`
	Metadata struct{} `json:"metadata"`
}

// InteractionsResponse represents the response for interaction lists.
type InteractionsResponse struct {
	Data []Interaction `json:"data"`
}

// SearchFilters contains search parameters for listing videos.
type SearchFilters struct {
	Query           string
	Channels        []string
	ExcludeChannels []string
	PublishedAfter  *time.Time
	PublishedBefore *time.Time
	Limit           int
	Page            int
	Sort            string
}

// Client is an HTTP client for the TubeRec API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (f SearchFilters) queryParams() url.Values {
	params := url.Values{}

	if f.Query != "" {
		params.Set("title", f.Query)
	}
	if len(f.Channels) > 0 {
		params.Set("only_channels", strings.Join(f.Channels, ","))
	}
	if len(f.ExcludeChannels) > 0 {
		params.Set("except_channels", strings.Join(f.ExcludeChannels, ","))
	}
	if f.PublishedAfter != nil {
		params.Set("published_after", f.PublishedAfter.Format(time.RFC3339))
	}
	if f.PublishedBefore != nil {
		params.Set("published_before", f.PublishedBefore.Format(time.RFC3339))
	}
	if f.Limit > 0 {
		params.Set("page_size", strconv.Itoa(f.Limit))
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	} else {
		params.Set("sort", "published_at_desc")
	}

	return params
}

// SearchVideos searches for videos with the given filters.
func (c *Client) SearchVideos(ctx context.Context, filters SearchFilters) ([]Video, error) {
	params := filters.queryParams()

	path := "/v1/videos"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result VideosResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetVideo retrieves a single video by its ID.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/videos/"+url.PathEscape(videoID))
	if err != nil {
		return nil, err
	}

	var video Video
	if err := c.handleResponse(resp, &video); err != nil {
		return nil, err
	}

	return &video, nil
}

// SemanticSearch finds videos semantically similar to the given text.
func (c *Client) SemanticSearch(ctx context.Context, text string, limit int) ([]Video, error) {
	reqBody := struct {
		Text  string `json:"text"`
		Limit int    `json:"limit"`
	}{
		Text:  text,
		Limit: limit,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, "/v1/videos/search", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var result VideosResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetUser retrieves a user profile by its ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.handleResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetRecommendations retrieves a personalized recommendation narrative for a query.
func (c *Client) GetRecommendations(ctx context.Context, userID, query string) (*Recommendation, error) {
	params := url.Values{}
	params.Set("query", query)

	path := "/v1/users/" + url.PathEscape(userID) + "/recommendations?" + params.Encode()

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var rec Recommendation
	if err := c.handleResponse(resp, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// RecordInteraction records a single interaction event and returns the resulting state.
func (c *Client) RecordInteraction(ctx context.Context, userID, videoID, action string) (*Interaction, error) {
	reqBody := struct {
		UserID  string `json:"user_id"`
		VideoID string `json:"video_id"`
		Action  string `json:"action"`
	}{
		UserID:  userID,
		VideoID: videoID,
		Action:  action,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, "/v1/interactions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var interaction Interaction
	if err := c.handleResponse(resp, &interaction); err != nil {
		return nil, err
	}

	return &interaction, nil
}

// DeleteInteraction removes a user's interaction record for a video.
func (c *Client) DeleteInteraction(ctx context.Context, userID, videoID string) error {
	path := "/v1/users/" + url.PathEscape(userID) + "/interactions/" + url.PathEscape(videoID)
	resp, err := c.doRequest(ctx, http.MethodDelete, path)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// ListHistory retrieves a user's interaction history, most recent first.
func (c *Client) ListHistory(ctx context.Context, userID string, limit int) ([]Interaction, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/v1/users/" + url.PathEscape(userID) + "/interactions"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result InteractionsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// ListWatchLater retrieves the videos on a user's watch later list.
func (c *Client) ListWatchLater(ctx context.Context, userID string) ([]Video, error) {
	path := "/v1/users/" + url.PathEscape(userID) + "/watch-later"

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result VideosResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// IngestVideos triggers catalogue ingestion for a topic and returns the number
// of newly saved videos.
func (c *Client) IngestVideos(ctx context.Context, topic string, maxResults int) (int, error) {
	params := url.Values{}
	params.Set("topic", topic)
	if maxResults > 0 {
		params.Set("max", strconv.Itoa(maxResults))
	}

	path := "/v1/ingestion?" + params.Encode()

	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return 0, err
	}

	var result struct {
		Saved int `json:"saved"`
	}
	if err := c.handleResponse(resp, &result); err != nil {
		return 0, err
	}

	return result.Saved, nil
}
