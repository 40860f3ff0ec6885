// Package websearch provides the web fallback used when the session's
// document index has nothing relevant to say.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	searchEndpoint   = "https://www.googleapis.com/customsearch/v1"
	searchResultSize = 5
)

// Provider returns a text digest of web results plus the result links.
type Provider interface {
	Search(ctx context.Context, query string) (string, []string, error)
}

// GoogleClient queries the Google Programmable Search JSON API.
type GoogleClient struct {
	ApiKey         string
	SearchEngineId string
	Client         *http.Client
}

func NewGoogleClient(apiKey, searchEngineId string) *GoogleClient {
	return &GoogleClient{
		ApiKey:         apiKey,
		SearchEngineId: searchEngineId,
		Client:         &http.Client{Timeout: 15 * time.Second},
	}
}

type googleSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search runs the query and flattens the top results into "Title:
// snippet" lines. Zero hits is not an error: the digest and links are
// simply empty.
func (c *GoogleClient) Search(ctx context.Context, query string) (string, []string, error) {
	if c.ApiKey == "" || c.SearchEngineId == "" {
		return "", nil, fmt.Errorf("web search is not configured")
	}

	params := url.Values{}
	params.Set("key", c.ApiKey)
	params.Set("cx", c.SearchEngineId)
	params.Set("q", query)
	params.Set("num", fmt.Sprintf("%d", searchResultSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", nil, err
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", nil, err
	}
	if res.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("google search error, code %d, body %s", res.StatusCode, string(resBody))
	}

	var searchRes googleSearchResponse
	if err := json.Unmarshal(resBody, &searchRes); err != nil {
		return "", nil, err
	}

	var (
		lines []string
		links []string
	)
	for _, item := range searchRes.Items {
		lines = append(lines, fmt.Sprintf("%s: %s", item.Title, item.Snippet))
		if item.Link != "" {
			links = append(links, item.Link)
		}
	}
	return strings.Join(lines, "\n"), links, nil
}
