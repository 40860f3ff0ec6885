package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is a unit of retrievable text produced by the ingestion
// router. Never mutated after insertion into the vector index.
type DocumentChunk struct {
	SourceType string
	SourceName string
	Url        string
	Content    string
}

// ChunkEmbedding is a DocumentChunk plus its embedding, scoped to a
// namespace (one namespace per session).
type ChunkEmbedding struct {
	Id             uuid.UUID
	Namespace      string
	SourceType     string
	SourceName     string
	Url            string
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
}

// Chunk projects the embedding row back to its retrievable chunk.
func (e *ChunkEmbedding) Chunk() DocumentChunk {
	return DocumentChunk{
		SourceType: e.SourceType,
		SourceName: e.SourceName,
		Url:        e.Url,
		Content:    e.Document,
	}
}
