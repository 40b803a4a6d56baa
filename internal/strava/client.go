package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the Strava v3 API root
const DefaultBaseURL = "https://www.strava.com/api/v3"

// PerPage is the page size used for activity listing, the maximum
// Strava allows
const PerPage = 200

// APIError is a non-2xx response from the Strava API. The whole fetch
// it occurred in is aborted; pages already received are discarded.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strava API error %d: %s", e.StatusCode, e.Body)
}

// Client is an authenticated Strava API client
type Client struct {
	// BaseURL can be overridden to point at a test server
	BaseURL string

	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a Strava client whose requests carry bearer tokens
// from the given source
func NewClient(src oauth2.TokenSource) *Client {
	return &Client{
		BaseURL:     DefaultBaseURL,
		httpClient:  oauth2.NewClient(context.Background(), src),
		rateLimiter: NewRateLimiter(),
	}
}

// ActivitiesBetween fetches every activity whose start time falls in
// [start, end], walking pagination until the API returns an empty
// page. Results are concatenated in the API's own order (typically
// reverse-chronological) and are not re-sorted. Any request failure
// aborts the whole call; no partial result is returned. There are no
// retries, a transient failure surfaces immediately.
func (c *Client) ActivitiesBetween(ctx context.Context, start, end time.Time) ([]Activity, error) {
	var all []Activity

	for page := 1; ; page++ {
		activities, err := c.listActivities(ctx, start, end, page)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		if len(activities) == 0 {
			break
		}
		all = append(all, activities...)
	}

	return all, nil
}

// listActivities fetches a single page of the activity listing
func (c *Client) listActivities(ctx context.Context, start, end time.Time, page int) ([]Activity, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("after", strconv.FormatInt(start.Unix(), 10))
	params.Set("before", strconv.FormatInt(end.Unix(), 10))
	params.Set("per_page", strconv.Itoa(PerPage))
	params.Set("page", strconv.Itoa(page))

	resp, err := c.get(ctx, "/athlete/activities", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}

	return activities, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return resp, nil
}
