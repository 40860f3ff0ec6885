// Package relevance decides whether vector search results are usable as
// grounding context.
package relevance

import (
	"context"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/pkg/vectorstore"
)

type Gate struct {
	threshold float64
	topK      int
	logger    logger.ILogger
}

func NewGate(threshold float64, topK int, log logger.ILogger) *Gate {
	if topK <= 0 {
		topK = 5
	}
	return &Gate{
		threshold: threshold,
		topK:      topK,
		logger:    log,
	}
}

func (g *Gate) Threshold() float64 {
	return g.threshold
}

// Retrieve runs the similarity search and accepts only matches at or
// above the threshold. A nil store, a backend error, or zero accepted
// matches all yield (false, nil): the caller falls through to web
// search, never aborts the turn.
func (g *Gate) Retrieve(ctx context.Context, store *vectorstore.Store, query string) (bool, []entity.DocumentChunk) {
	if store == nil {
		return false, nil
	}

	scored, err := store.SearchWithScore(ctx, query, g.topK, g.threshold)
	if err != nil {
		g.logger.Warn("relevance", "Vector search failed, skipping document retrieval", map[string]interface{}{
			"namespace": store.Namespace(),
			"error":     err.Error(),
		})
		return false, nil
	}

	if len(scored) == 0 {
		g.logger.Debug("relevance", "No chunks cleared the similarity threshold", map[string]interface{}{
			"namespace": store.Namespace(),
			"threshold": g.threshold,
		})
		return false, nil
	}

	chunks := make([]entity.DocumentChunk, len(scored))
	for i, s := range scored {
		chunks[i] = s.Embedding.Chunk()
	}

	g.logger.Debug("relevance", "Accepted grounding chunks", map[string]interface{}{
		"namespace": store.Namespace(),
		"count":     len(chunks),
		"top_score": scored[0].Similarity,
	})
	return true, chunks
}
