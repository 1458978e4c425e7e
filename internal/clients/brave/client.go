package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"
)

// Result is one web search hit.
type Result struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type searchResponse struct {
	Web struct {
		Results []Result `json:"results"`
	} `json:"web"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Brave web search API. The free tier allows roughly one
// request per second, so callers should set a rate limit.
type Client struct {
	httpClient  HTTPClient
	apiKey      string
	rateLimiter *rate.Limiter
}

func NewClient(apiKey string) *Client {
	return &Client{httpClient: &http.Client{}, apiKey: apiKey}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Search runs one query with the given freshness window ("pd", "pw", "pm")
// and result cap, and returns the web results in API order.
func (c *Client) Search(ctx context.Context, query string, freshness string, count int) ([]Result, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("freshness", freshness)
	params.Set("count", strconv.Itoa(count))

	apiURL := "https://api.search.brave.com/res/v1/web/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed with status %v", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return searchResp.Web.Results, nil
}
