package dto

// ProcessResponse is shared by document and URL ingestion. Sources is
// the session's full processed-document set after this call; Skipped is
// true when the source was already indexed and nothing was re-embedded.
type ProcessResponse struct {
	Success   bool     `json:"success"`
	SessionId string   `json:"session_id"`
	Sources   []string `json:"sources"`
	Skipped   bool     `json:"skipped"`
}

type ProcessURLRequest struct {
	SessionId string `json:"session_id"`
	URL       string `json:"url" validate:"required,url"`
}
