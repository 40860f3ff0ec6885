package service

import (
	"context"
	"errors"
	"testing"

	"teaching-assistant-be/internal/dto"
	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/apperror"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/pkg/events"
	"teaching-assistant-be/pkg/vectorstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type docHarness struct {
	service   IDocumentService
	uowf      *fakeUowFactory
	cache     *fakeSessionCache
	ingestor  *fakeIngestor
	publisher *fakePublisher
	chunks    *fakeChunkRepo
}

func newDocHarness() *docHarness {
	uowf := newFakeUowFactory()
	cache := newFakeSessionCache()
	ingestor := &fakeIngestor{}
	publisher := &fakePublisher{}
	vectorCache := vectorstore.NewCache(&fakeEmbedder{}, uowf.uow.chunks, logger.NewNop())

	return &docHarness{
		service:   NewDocumentService(uowf, cache, vectorCache, ingestor, publisher, logger.NewNop()),
		uowf:      uowf,
		cache:     cache,
		ingestor:  ingestor,
		publisher: publisher,
		chunks:    uowf.uow.chunks,
	}
}

func TestProcessDocumentNewSession(t *testing.T) {
	h := newDocHarness()

	res, err := h.service.ProcessDocument(context.Background(), "", "paper.pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Skipped)
	assert.Equal(t, []string{"paper.pdf"}, res.Sources)
	require.NotEmpty(t, res.SessionId)

	id := uuid.MustParse(res.SessionId)
	saved := h.uowf.uow.sessions.sessions[id]
	require.NotNil(t, saved)
	assert.True(t, saved.ProcessedDocuments.Contains("paper.pdf"))
	require.Len(t, saved.DocSources, 1)
	assert.Equal(t, "document", saved.DocSources[0].Type)

	require.Len(t, h.chunks.created, 1, "chunks must be embedded into the session namespace")
	assert.Equal(t, res.SessionId, h.chunks.created[0].Namespace)
	assert.Equal(t, []string{events.TypeDocumentProcessed}, h.publisher.eventTypes())
}

func TestProcessDocumentIdempotent(t *testing.T) {
	h := newDocHarness()
	session := entity.NewSession(uuid.New(), "Untitled Session")
	session.ProcessedDocuments.Add("paper.pdf")
	h.uowf.uow.sessions.sessions[session.Id] = session

	res, err := h.service.ProcessDocument(context.Background(), session.Id.String(), "paper.pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Equal(t, 0, h.ingestor.docCalls, "already-indexed sources must not be re-extracted")
	assert.Empty(t, h.chunks.created)
	assert.Empty(t, h.publisher.eventTypes())
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	h := newDocHarness()
	h.ingestor.err = errBoom

	_, err := h.service.ProcessDocument(context.Background(), "", "broken.pdf", []byte("junk"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrProcessingFailed))
	assert.Equal(t, 0, h.uowf.uow.sessions.saves, "failed ingestion must not persist session changes")
}

func TestProcessURL(t *testing.T) {
	h := newDocHarness()

	res, err := h.service.ProcessURL(context.Background(), &dto.ProcessURLRequest{
		URL: "https://example.com/article",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/article"}, res.Sources)
	assert.Equal(t, 1, h.ingestor.urlCalls)

	id := uuid.MustParse(res.SessionId)
	saved := h.uowf.uow.sessions.sessions[id]
	require.NotNil(t, saved)
	assert.True(t, saved.ProcessedDocuments.Contains("https://example.com/article"))
}

func TestProcessURLIdempotentAcrossEntryPoints(t *testing.T) {
	// A URL ingested during a chat turn must be skipped here too: the
	// processed set is shared by every ingestion entry point.
	h := newDocHarness()
	session := entity.NewSession(uuid.New(), "Untitled Session")
	session.ProcessedDocuments.Add("https://example.com/article")
	h.uowf.uow.sessions.sessions[session.Id] = session

	res, err := h.service.ProcessURL(context.Background(), &dto.ProcessURLRequest{
		SessionId: session.Id.String(),
		URL:       "https://example.com/article",
	})
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Equal(t, 0, h.ingestor.urlCalls)
}
