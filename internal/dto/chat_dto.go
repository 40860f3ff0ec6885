package dto

type ChatRequest struct {
	Content        string  `json:"content" validate:"required"`
	ForceWebSearch bool    `json:"force_web_search"`
	SessionId      *string `json:"session_id"`
}

type SourceDTO struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Content   string      `json:"content"`
	Sources   []SourceDTO `json:"sources"`
	SessionId string      `json:"session_id"`
}

type RewriteQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type RewriteQueryResponse struct {
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type SearchResponse struct {
	Results string   `json:"results"`
	Links   []string `json:"links"`
}
