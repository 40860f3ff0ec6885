package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// WebExtractor fetches a page and strips it down to readable text.
type WebExtractor struct {
	client *http.Client
}

func NewWebExtractor() *WebExtractor {
	return &WebExtractor{
		client: &http.Client{Timeout: 20 * time.Second},
	}
}

// Extract returns the page's visible text and its <title>.
func (w *WebExtractor) Extract(ctx context.Context, url string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; teaching-assistant/1.0)")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript, nav, footer, iframe").Remove()
	text := doc.Find("body").Text()

	return collapseWhitespace(text), title, nil
}

// collapseWhitespace folds runs of blanks and newlines so the splitter
// sees prose, not layout artifacts.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
