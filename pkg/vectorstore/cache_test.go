package vectorstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/internal/repository/contract"
)

type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeChunkRepo struct {
	mu      sync.Mutex
	created []*entity.ChunkEmbedding
	results []*contract.ScoredChunkEmbedding
	err     error
}

func (f *fakeChunkRepo) CreateBulk(ctx context.Context, embeddings []*entity.ChunkEmbedding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, embeddings...)
	return nil
}

func (f *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, namespace string, threshold float64) ([]*contract.ScoredChunkEmbedding, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeChunkRepo) CountByNamespace(ctx context.Context, namespace string) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeChunkRepo) DeleteByNamespace(ctx context.Context, namespace string) error {
	return nil
}

func TestCacheReusesHandle(t *testing.T) {
	c := NewCache(&fakeEmbedder{}, &fakeChunkRepo{}, logger.NewNop())

	first := c.GetOrCreate("session-1")
	second := c.GetOrCreate("session-1")

	if first == nil || second == nil {
		t.Fatal("expected non-nil handles")
	}
	if first != second {
		t.Error("same session should reuse the same handle")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheSeparateNamespaces(t *testing.T) {
	c := NewCache(&fakeEmbedder{}, &fakeChunkRepo{}, logger.NewNop())

	a := c.GetOrCreate("session-a")
	b := c.GetOrCreate("session-b")

	if a == b {
		t.Error("different sessions must get different handles")
	}
	if a.Namespace() != "session-a" || b.Namespace() != "session-b" {
		t.Error("handle namespace must match its session id")
	}
}

func TestCacheNilWithoutBackend(t *testing.T) {
	c := NewCache(nil, nil, logger.NewNop())

	if got := c.GetOrCreate("session-1"); got != nil {
		t.Error("expected nil handle when no vector backend is configured")
	}
	if c.Len() != 0 {
		t.Error("no handle should be cached without a backend")
	}
}

func TestCacheEvict(t *testing.T) {
	c := NewCache(&fakeEmbedder{}, &fakeChunkRepo{}, logger.NewNop())

	first := c.GetOrCreate("session-1")
	c.Evict("session-1")
	second := c.GetOrCreate("session-1")

	if first == second {
		t.Error("eviction should force a fresh handle")
	}
}

func TestCacheConcurrentSingleHandle(t *testing.T) {
	c := NewCache(&fakeEmbedder{}, &fakeChunkRepo{}, logger.NewNop())

	const workers = 16
	handles := make([]*Store, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = c.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if handles[i] != handles[0] {
			t.Fatalf("worker %d got a different handle", i)
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestStoreAddDocuments(t *testing.T) {
	embedder := &fakeEmbedder{}
	repo := &fakeChunkRepo{}
	store := NewStore("ns-1", embedder, repo)

	docs := []entity.DocumentChunk{
		{SourceType: "document", SourceName: "a.pdf", Content: "chunk one"},
		{SourceType: "document", SourceName: "a.pdf", Content: "chunk two"},
	}
	if err := store.AddDocuments(context.Background(), docs); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}

	if len(repo.created) != 2 {
		t.Fatalf("created %d embeddings, want 2", len(repo.created))
	}
	for i, e := range repo.created {
		if e.Namespace != "ns-1" {
			t.Errorf("embedding %d namespace = %q, want ns-1", i, e.Namespace)
		}
		if e.ChunkIndex != i {
			t.Errorf("embedding %d chunk index = %d, want %d", i, e.ChunkIndex, i)
		}
	}
	if embedder.calls != 2 {
		t.Errorf("embedder called %d times, want 2", embedder.calls)
	}
}

func TestStoreAddDocumentsEmbedFailure(t *testing.T) {
	repo := &fakeChunkRepo{}
	store := NewStore("ns-1", &fakeEmbedder{err: fmt.Errorf("quota exceeded")}, repo)

	err := store.AddDocuments(context.Background(), []entity.DocumentChunk{{Content: "x"}})
	if err == nil {
		t.Fatal("expected embed failure to propagate")
	}
	if len(repo.created) != 0 {
		t.Error("no embeddings should be written when embedding fails")
	}
}

func TestStoreAddDocumentsEmptyInput(t *testing.T) {
	repo := &fakeChunkRepo{}
	store := NewStore("ns-1", &fakeEmbedder{}, repo)

	if err := store.AddDocuments(context.Background(), nil); err != nil {
		t.Fatalf("empty input should be a no-op, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("no embeddings expected for empty input")
	}
}
