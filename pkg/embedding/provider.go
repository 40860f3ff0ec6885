package embedding

import "context"

// Task types passed to providers that distinguish query and document
// embeddings (Gemini does; Ollama ignores them).
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// Provider generates a text embedding for the given task type.
type Provider interface {
	Embed(ctx context.Context, text string, taskType string) ([]float32, error)
}
