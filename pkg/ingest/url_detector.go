package ingest

import "regexp"

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// DetectURLs scans free text for http(s) URLs, preserving first-seen
// order and dropping duplicates.
func DetectURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		urls = append(urls, m)
	}
	return urls
}
