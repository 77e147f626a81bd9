package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tuberec/tuberec/internal/datasources"
)

var _ datasources.CatalogRepository = (*Client)(nil)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client talks to the YouTube Data API v3 for catalog search and batched
// detail lookup.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new YouTube Data API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string   `json:"title"`
			Description  string   `json:"description"`
			ChannelTitle string   `json:"channelTitle"`
			PublishedAt  string   `json:"publishedAt"`
			Tags         []string `json:"tags"`
			Thumbnails   struct {
				Default thumbnail `json:"default"`
				Medium  thumbnail `json:"medium"`
				High    thumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// SearchVideoIDs returns candidate video IDs for the query in the catalog's
// relevance order.
func (c *Client) SearchVideoIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))

	var result searchResponse
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// FetchVideoDetails fetches snippet, content details and statistics for the
// given IDs in a single batched call.
func (c *Client) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]datasources.CatalogVideo, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(videoIDs, ","))

	var result videosResponse
	if err := c.get(ctx, "/videos", params, &result); err != nil {
		return nil, fmt.Errorf("fetching video details: %w", err)
	}

	records := make([]datasources.CatalogVideo, 0, len(result.Items))
	for _, item := range result.Items {
		viewCount, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)

		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

		thumbnailURL := item.Snippet.Thumbnails.High.URL
		if thumbnailURL == "" {
			thumbnailURL = item.Snippet.Thumbnails.Medium.URL
		}
		if thumbnailURL == "" {
			thumbnailURL = item.Snippet.Thumbnails.Default.URL
		}

		records = append(records, datasources.CatalogVideo{
			VideoID:      item.ID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelName:  item.Snippet.ChannelTitle,
			DurationText: item.ContentDetails.Duration,
			ViewCount:    viewCount,
			Tags:         item.Snippet.Tags,
			ThumbnailURL: thumbnailURL,
			PublishedAt:  publishedAt,
		})
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("YouTube API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
