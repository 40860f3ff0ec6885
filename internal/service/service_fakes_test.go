package service

import (
	"context"
	"fmt"
	"sync"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/repository/contract"
	"teaching-assistant-be/internal/repository/unitofwork"
	"teaching-assistant-be/pkg/events"
	"teaching-assistant-be/pkg/ingest"

	"github.com/google/uuid"
)

// --- repository fakes ---

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
	saves    int
	findErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return f.Save(ctx, session)
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.sessions[session.Id] = session
	return nil
}

func (f *fakeSessionRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.sessions[id], nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context) ([]*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Session, 0, len(f.sessions))
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

type fakeChunkRepo struct {
	mu          sync.Mutex
	created     []*entity.ChunkEmbedding
	results     []*contract.ScoredChunkEmbedding
	searchCalls int
	deletedNS   []string
}

func (f *fakeChunkRepo) CreateBulk(ctx context.Context, embeddings []*entity.ChunkEmbedding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, embeddings...)
	return nil
}

func (f *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, namespace string, threshold float64) ([]*contract.ScoredChunkEmbedding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	return f.results, nil
}

func (f *fakeChunkRepo) CountByNamespace(ctx context.Context, namespace string) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeChunkRepo) DeleteByNamespace(ctx context.Context, namespace string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedNS = append(f.deletedNS, namespace)
	return nil
}

type fakeEventLogRepo struct {
	mu      sync.Mutex
	records []*entity.EventLog
}

func (f *fakeEventLogRepo) Create(ctx context.Context, event *entity.EventLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, event)
	return nil
}

func (f *fakeEventLogRepo) FindRecent(ctx context.Context, limit int) ([]*entity.EventLog, error) {
	return f.records, nil
}

// --- unit of work fakes ---

type fakeUow struct {
	sessions  *fakeSessionRepo
	chunks    *fakeChunkRepo
	eventLogs *fakeEventLogRepo
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) SessionRepository() contract.SessionRepository {
	return f.sessions
}

func (f *fakeUow) ChunkEmbeddingRepository() contract.ChunkEmbeddingRepository {
	return f.chunks
}

func (f *fakeUow) EventLogRepository() contract.EventLogRepository {
	return f.eventLogs
}

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: &fakeUow{
		sessions:  newFakeSessionRepo(),
		chunks:    &fakeChunkRepo{},
		eventLogs: &fakeEventLogRepo{},
	}}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// --- session cache fake ---

type fakeSessionCache struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionCache) Get(ctx context.Context, id string) (*entity.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	return s, ok
}

func (f *fakeSessionCache) Set(ctx context.Context, session *entity.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Id.String()] = session
}

func (f *fakeSessionCache) Delete(ctx context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
}

// --- agent fakes ---

type fakeRewriter struct {
	calls int
	err   error
}

func (f *fakeRewriter) Rewrite(ctx context.Context, question string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "rewritten: " + question, nil
}

type fakeResponder struct {
	lastPrompt string
	err        error
}

func (f *fakeResponder) Respond(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return "the answer", nil
}

type fakeTitler struct {
	calls int
	err   error
}

func (f *fakeTitler) TitleFor(ctx context.Context, message string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "Generated Title", nil
}

// --- web search fake ---

type fakeSearch struct {
	calls   int
	results string
	links   []string
	err     error
}

func (f *fakeSearch) Search(ctx context.Context, query string) (string, []string, error) {
	f.calls++
	if f.err != nil {
		return "", nil, f.err
	}
	return f.results, f.links, nil
}

// --- ingestor fake ---

type fakeIngestor struct {
	docCalls int
	urlCalls int
	err      error
}

func (f *fakeIngestor) IngestDocument(ctx context.Context, filename string, data []byte) (*ingest.Result, error) {
	f.docCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &ingest.Result{
		Source: entity.NewSourceDescriptor("document", filename, "", "extracted text"),
		Chunks: []entity.DocumentChunk{{SourceType: "document", SourceName: filename, Content: "extracted text"}},
	}, nil
}

func (f *fakeIngestor) IngestURL(ctx context.Context, url string) (*ingest.Result, error) {
	f.urlCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &ingest.Result{
		Source: entity.NewSourceDescriptor("web", url, url, "page text"),
		Chunks: []entity.DocumentChunk{{SourceType: "web", SourceName: url, Url: url, Content: "page text"}},
	}, nil
}

// --- publisher fake ---

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) PublishEvent(ctx context.Context, event events.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakePublisher) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.events))
	for i, e := range f.events {
		types[i] = e.EventType()
	}
	return types
}

// --- embedder fake (for the vector index cache) ---

type fakeEmbedder struct{ err error }

func (f *fakeEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.5, 0.5}, nil
}

func scoredChunk(content string, score float64) *contract.ScoredChunkEmbedding {
	return &contract.ScoredChunkEmbedding{
		Embedding: &entity.ChunkEmbedding{
			SourceType: "document",
			SourceName: "notes.pdf",
			Document:   content,
		},
		Similarity: score,
	}
}

var errBoom = fmt.Errorf("boom")
