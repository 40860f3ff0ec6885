// Package vectorstore provides the per-session vector index handle and
// the process-wide cache that owns handle creation and reuse.
package vectorstore

import (
	"context"
	"fmt"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/repository/contract"
	"teaching-assistant-be/pkg/embedding"
)

// Store is a vector index handle scoped to one namespace (== session
// id) within the shared chunk embedding table.
type Store struct {
	namespace string
	embedder  embedding.Provider
	chunks    contract.ChunkEmbeddingRepository
}

func NewStore(namespace string, embedder embedding.Provider, chunks contract.ChunkEmbeddingRepository) *Store {
	return &Store{
		namespace: namespace,
		embedder:  embedder,
		chunks:    chunks,
	}
}

func (s *Store) Namespace() string {
	return s.namespace
}

// AddDocuments embeds the chunks and appends them to the namespace.
// Chunks are never mutated after insertion.
func (s *Store) AddDocuments(ctx context.Context, docs []entity.DocumentChunk) error {
	if len(docs) == 0 {
		return nil
	}

	embeddings := make([]*entity.ChunkEmbedding, 0, len(docs))
	for i, doc := range docs {
		values, err := s.embedder.Embed(ctx, doc.Content, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("embed chunk %d: %w", i, err)
		}
		embeddings = append(embeddings, &entity.ChunkEmbedding{
			Namespace:      s.namespace,
			SourceType:     doc.SourceType,
			SourceName:     doc.SourceName,
			Url:            doc.Url,
			Document:       doc.Content,
			EmbeddingValue: values,
			ChunkIndex:     i,
		})
	}

	return s.chunks.CreateBulk(ctx, embeddings)
}

// SearchWithScore embeds the query and runs the namespaced similarity
// search, keeping only matches at or above threshold.
func (s *Store) SearchWithScore(ctx context.Context, query string, topK int, threshold float64) ([]*contract.ScoredChunkEmbedding, error) {
	values, err := s.embedder.Embed(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.chunks.SearchSimilarWithScore(ctx, values, topK, s.namespace, threshold)
}
