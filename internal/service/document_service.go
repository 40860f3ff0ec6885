package service

import (
	"context"
	"fmt"

	"teaching-assistant-be/internal/constant"
	"teaching-assistant-be/internal/dto"
	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/apperror"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/internal/repository/cache"
	"teaching-assistant-be/internal/repository/unitofwork"
	"teaching-assistant-be/pkg/events"
	"teaching-assistant-be/pkg/ingest"
	"teaching-assistant-be/pkg/vectorstore"

	"github.com/google/uuid"
)

type IDocumentService interface {
	ProcessDocument(ctx context.Context, sessionId, filename string, data []byte) (*dto.ProcessResponse, error)
	ProcessURL(ctx context.Context, request *dto.ProcessURLRequest) (*dto.ProcessResponse, error)
}

// documentService indexes uploads and URLs into a session's vector
// namespace. Ingestion is idempotent: a source already in the session's
// processed set is skipped, never re-embedded.
type documentService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionCache cache.ISessionCache
	vectorCache  *vectorstore.Cache
	ingestor     ingest.Ingestor
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	sessionCache cache.ISessionCache,
	vectorCache *vectorstore.Cache,
	ingestor ingest.Ingestor,
	publisher IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:   uowFactory,
		sessionCache: sessionCache,
		vectorCache:  vectorCache,
		ingestor:     ingestor,
		publisher:    publisher,
		logger:       log,
	}
}

func (ds *documentService) ProcessDocument(ctx context.Context, sessionId, filename string, data []byte) (*dto.ProcessResponse, error) {
	return ds.process(ctx, sessionId, filename, func(ctx context.Context) (*ingest.Result, error) {
		return ds.ingestor.IngestDocument(ctx, filename, data)
	})
}

func (ds *documentService) ProcessURL(ctx context.Context, request *dto.ProcessURLRequest) (*dto.ProcessResponse, error) {
	return ds.process(ctx, request.SessionId, request.URL, func(ctx context.Context) (*ingest.Result, error) {
		return ds.ingestor.IngestURL(ctx, request.URL)
	})
}

// process is the shared ingestion path. sourceKey is the identity used
// for the idempotency check: the filename for uploads, the URL for
// links. An empty session id starts a new session.
func (ds *documentService) process(ctx context.Context, sessionId, sourceKey string, extract func(context.Context) (*ingest.Result, error)) (*dto.ProcessResponse, error) {
	session := ds.loadOrCreateSession(ctx, sessionId)
	id := session.Id.String()

	if session.ProcessedDocuments.Contains(sourceKey) {
		return &dto.ProcessResponse{
			Success:   true,
			SessionId: id,
			Sources:   session.ProcessedDocuments.Values(),
			Skipped:   true,
		}, nil
	}

	store := ds.vectorCache.GetOrCreate(id)
	if store == nil {
		return nil, fmt.Errorf("%w: vector backend unavailable", apperror.ErrProcessingFailed)
	}

	result, err := extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProcessingFailed, err)
	}
	if err := store.AddDocuments(ctx, result.Chunks); err != nil {
		return nil, fmt.Errorf("%w: index chunks: %v", apperror.ErrProcessingFailed, err)
	}

	session.ProcessedDocuments.Add(sourceKey)
	session.DocSources = append(session.DocSources, result.Source)
	if err := ds.saveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: persist session: %v", apperror.ErrProcessingFailed, err)
	}

	ds.publisher.PublishEvent(ctx, events.NewDocumentProcessed(id, sourceKey, result.Source.Type, len(result.Chunks)))
	ds.logger.Info("document", "Source indexed into session", map[string]interface{}{
		"session_id":  id,
		"source":      sourceKey,
		"source_type": result.Source.Type,
		"chunk_count": len(result.Chunks),
	})

	return &dto.ProcessResponse{
		Success:   true,
		SessionId: id,
		Sources:   session.ProcessedDocuments.Values(),
	}, nil
}

func (ds *documentService) loadOrCreateSession(ctx context.Context, sessionId string) *entity.Session {
	id := uuid.New()
	if sessionId != "" {
		if parsed, err := uuid.Parse(sessionId); err == nil {
			id = parsed
		}
	}

	if session, found := ds.sessionCache.Get(ctx, id.String()); found {
		return session
	}

	uow := ds.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindById(ctx, id)
	if err != nil {
		ds.logger.Warn("document", "Session lookup failed, starting fresh session", map[string]interface{}{
			"session_id": id.String(),
			"error":      err.Error(),
		})
	}
	if session == nil {
		session = entity.NewSession(id, constant.DefaultSessionName)
	}
	return session
}

func (ds *documentService) saveSession(ctx context.Context, session *entity.Session) error {
	uow := ds.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Save(ctx, session); err != nil {
		return err
	}
	ds.sessionCache.Set(ctx, session)
	return nil
}
