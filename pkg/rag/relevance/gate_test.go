package relevance

import (
	"context"
	"fmt"
	"testing"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/internal/repository/contract"
	"teaching-assistant-be/pkg/vectorstore"
)

type stubEmbedder struct{ err error }

func (s *stubEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []float32{1, 0, 0}, nil
}

type stubChunkRepo struct {
	results []*contract.ScoredChunkEmbedding
	err     error
}

func (s *stubChunkRepo) CreateBulk(ctx context.Context, embeddings []*entity.ChunkEmbedding) error {
	return nil
}

func (s *stubChunkRepo) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, namespace string, threshold float64) ([]*contract.ScoredChunkEmbedding, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubChunkRepo) CountByNamespace(ctx context.Context, namespace string) (int64, error) {
	return 0, nil
}

func (s *stubChunkRepo) DeleteByNamespace(ctx context.Context, namespace string) error {
	return nil
}

func scored(content string, score float64) *contract.ScoredChunkEmbedding {
	return &contract.ScoredChunkEmbedding{
		Embedding: &entity.ChunkEmbedding{
			SourceType: "document",
			SourceName: "notes.pdf",
			Document:   content,
		},
		Similarity: score,
	}
}

func TestRetrieveNilStore(t *testing.T) {
	g := NewGate(0.7, 5, logger.NewNop())

	relevant, chunks := g.Retrieve(context.Background(), nil, "query")
	if relevant || chunks != nil {
		t.Error("nil store must yield (false, nil)")
	}
}

func TestRetrieveAcceptsMatches(t *testing.T) {
	repo := &stubChunkRepo{results: []*contract.ScoredChunkEmbedding{
		scored("first chunk", 0.92),
		scored("second chunk", 0.81),
	}}
	store := vectorstore.NewStore("s1", &stubEmbedder{}, repo)
	g := NewGate(0.7, 5, logger.NewNop())

	relevant, chunks := g.Retrieve(context.Background(), store, "query")
	if !relevant {
		t.Fatal("expected relevant result")
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Content != "first chunk" || chunks[0].SourceName != "notes.pdf" {
		t.Errorf("unexpected first chunk: %+v", chunks[0])
	}
}

func TestRetrieveNoMatches(t *testing.T) {
	store := vectorstore.NewStore("s1", &stubEmbedder{}, &stubChunkRepo{})
	g := NewGate(0.7, 5, logger.NewNop())

	relevant, chunks := g.Retrieve(context.Background(), store, "query")
	if relevant || chunks != nil {
		t.Error("zero accepted matches must yield (false, nil)")
	}
}

func TestRetrieveSearchErrorIsSoft(t *testing.T) {
	store := vectorstore.NewStore("s1", &stubEmbedder{}, &stubChunkRepo{err: fmt.Errorf("connection refused")})
	g := NewGate(0.7, 5, logger.NewNop())

	relevant, chunks := g.Retrieve(context.Background(), store, "query")
	if relevant || chunks != nil {
		t.Error("backend errors must degrade to (false, nil), not panic or propagate")
	}
}

func TestRetrieveEmbedErrorIsSoft(t *testing.T) {
	store := vectorstore.NewStore("s1", &stubEmbedder{err: fmt.Errorf("quota")}, &stubChunkRepo{})
	g := NewGate(0.7, 5, logger.NewNop())

	relevant, _ := g.Retrieve(context.Background(), store, "query")
	if relevant {
		t.Error("embedding failure must yield false")
	}
}
