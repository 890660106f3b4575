package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/iamahmadmhd/cinemora/internal/models"
)

// Client is the catalog API client. All requests carry bearer-token auth.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient creates a new catalog API client.
func NewClient(token, baseURL string) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Discover fetches a filtered, sorted listing page for the given media type.
// The sort_by/order parameter pair is folded into the upstream's dotted
// sort_by form before sending.
func (c *Client) Discover(ctx context.Context, mediaType models.MediaType, params url.Values) (*PagedResponse, error) {
	path := fmt.Sprintf("/discover/%s", mediaType)
	var result PagedResponse
	if err := c.get(ctx, path, foldSort(params), &result); err != nil {
		return nil, err
	}
	fillMediaType(result.Results, mediaType)
	return &result, nil
}

// Search fetches a text-search listing page for the given media type. Used
// instead of Discover when the criteria carry a keywords term.
func (c *Client) Search(ctx context.Context, mediaType models.MediaType, params url.Values) (*PagedResponse, error) {
	path := fmt.Sprintf("/search/%s", mediaType)
	var result PagedResponse
	if err := c.get(ctx, path, foldSort(params), &result); err != nil {
		return nil, err
	}
	fillMediaType(result.Results, mediaType)
	return &result, nil
}

// Trending fetches the trending listing for the given media type and window
// ("day" or "week"). Trending results carry their own media_type field.
func (c *Client) Trending(ctx context.Context, mediaType models.MediaType, window string) (*PagedResponse, error) {
	path := fmt.Sprintf("/trending/%s/%s", mediaType, window)
	var result PagedResponse
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	fillMediaType(result.Results, mediaType)
	return &result, nil
}

// Detail fetches a single item by id. The response has no media_type field;
// the requested type is stamped onto the result.
func (c *Client) Detail(ctx context.Context, mediaType models.MediaType, id int) (*RawItem, error) {
	path := fmt.Sprintf("/%s/%d", mediaType, id)
	var result RawItem
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	result.MediaType = string(mediaType)
	return &result, nil
}

// Genres fetches the genre id/name list for the given media type.
func (c *Client) Genres(ctx context.Context, mediaType models.MediaType) ([]Genre, error) {
	path := fmt.Sprintf("/genre/%s/list", mediaType)
	var result GenreListResponse
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Genres, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	slog.Debug("fetching catalog", "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("catalog item not found: %w", models.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: catalog returned status %d: %s", models.ErrUpstream, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", models.ErrUpstream, err)
	}
	return nil
}

// foldSort converts the separate sort_by/order parameter pair into the
// upstream's "field.direction" form. The order key is never sent upstream.
func foldSort(params url.Values) url.Values {
	if params == nil {
		return nil
	}
	folded := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			folded.Add(k, v)
		}
	}
	if field := folded.Get("sort_by"); field != "" {
		if order := folded.Get("order"); order != "" {
			folded.Set("sort_by", field+"."+order)
		}
	}
	folded.Del("order")
	return folded
}

// fillMediaType stamps the media type onto items from endpoints whose URL,
// not payload, implies the variant.
func fillMediaType(items []RawItem, mediaType models.MediaType) {
	for i := range items {
		if items[i].MediaType == "" {
			items[i].MediaType = string(mediaType)
		}
	}
}
