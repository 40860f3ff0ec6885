package contract

import (
	"context"

	"teaching-assistant-be/internal/entity"
)

// ScoredChunkEmbedding wraps a ChunkEmbedding with its cosine similarity
// score (0.0 to 1.0, 1.0 = identical).
type ScoredChunkEmbedding struct {
	Embedding  *entity.ChunkEmbedding
	Similarity float64
}

type ChunkEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.ChunkEmbedding) error
	// SearchSimilarWithScore runs a namespaced similarity search and keeps
	// only matches at or above threshold, ordered by similarity descending.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, namespace string, threshold float64) ([]*ScoredChunkEmbedding, error)
	CountByNamespace(ctx context.Context, namespace string) (int64, error)
	DeleteByNamespace(ctx context.Context, namespace string) error
}
