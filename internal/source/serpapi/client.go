package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

const searchURL = "https://serpapi.com/search.json"

// One attempt per call; the orchestrator treats a failed pair as empty and
// moves on, so there is no retry logic here.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

var _ source.Source = (*Client)(nil)

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: searchURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string {
	return "SerpAPI"
}

// Search runs one Google Jobs query for "<term> in <location>" and returns
// the decoded jobs_results. A missing jobs_results field is an empty result,
// not an error.
func (c *Client) Search(ctx context.Context, term, location string) ([]source.Job, error) {
	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", fmt.Sprintf("%s in %s", term, location))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body struct {
		JobsResults []source.Job `json:"jobs_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	return body.JobsResults, nil
}
