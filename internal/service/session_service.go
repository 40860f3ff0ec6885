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
	"teaching-assistant-be/pkg/vectorstore"

	"github.com/google/uuid"
)

type ISessionService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.SessionSummaryResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error)
	GetSessionSources(ctx context.Context, sessionId string) (*dto.SessionSourcesResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error
}

type sessionService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionCache cache.ISessionCache
	vectorCache  *vectorstore.Cache
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	sessionCache cache.ISessionCache,
	vectorCache *vectorstore.Cache,
	publisher IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:   uowFactory,
		sessionCache: sessionCache,
		vectorCache:  vectorCache,
		publisher:    publisher,
		logger:       log,
	}
}

func (ss *sessionService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	name := request.Name
	if name == "" {
		name = constant.DefaultSessionName
	}

	session := entity.NewSession(uuid.New(), name)
	uow := ss.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	ss.sessionCache.Set(ctx, session)

	return &dto.CreateSessionResponse{Id: session.Id, Name: session.Name}, nil
}

func (ss *sessionService) GetAllSessions(ctx context.Context) ([]*dto.SessionSummaryResponse, error) {
	uow := ss.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	summaries := make([]*dto.SessionSummaryResponse, len(sessions))
	for i, s := range sessions {
		summaries[i] = &dto.SessionSummaryResponse{
			Id:        s.Id,
			Name:      s.Name,
			TurnCount: len(s.History),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}
	}
	return summaries, nil
}

func (ss *sessionService) GetSession(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error) {
	session, err := ss.findSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	history := make([]dto.TurnDTO, len(session.History))
	for i, t := range session.History {
		history[i] = dto.TurnDTO{Role: t.Role, Content: t.Content}
	}

	return &dto.SessionDetailResponse{
		Id:                 session.Id,
		Name:               session.Name,
		History:            history,
		ProcessedDocuments: session.ProcessedDocuments.Values(),
		InfoMessages:       session.InfoMessages,
		UseWebSearch:       session.UseWebSearch,
		CreatedAt:          session.CreatedAt,
		UpdatedAt:          session.UpdatedAt,
		Sources:            sourceDTOs(session.DocSources),
	}, nil
}

func (ss *sessionService) GetSessionSources(ctx context.Context, sessionId string) (*dto.SessionSourcesResponse, error) {
	session, err := ss.findSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	return &dto.SessionSourcesResponse{
		SessionId:  session.Id,
		DocSources: sourceDTOs(session.DocSources),
		WebSources: session.SearchSources,
	}, nil
}

// DeleteSession removes the session row, its cached copy, its vector
// namespace, and the cached index handle.
func (ss *sessionService) DeleteSession(ctx context.Context, sessionId string) error {
	session, err := ss.findSession(ctx, sessionId)
	if err != nil {
		return err
	}
	id := session.Id.String()

	uow := ss.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.SessionRepository().Delete(ctx, session.Id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := uow.ChunkEmbeddingRepository().DeleteByNamespace(ctx, id); err != nil {
		return fmt.Errorf("delete session embeddings: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	ss.sessionCache.Delete(ctx, id)
	ss.vectorCache.Evict(id)
	ss.publisher.PublishEvent(ctx, events.NewSessionDeleted(id))
	ss.logger.Info("session", "Session deleted", map[string]interface{}{
		"session_id": id,
	})
	return nil
}

// findSession is the read-only lookup: unlike chat, a missing session
// here is an error, not a bootstrap.
func (ss *sessionService) findSession(ctx context.Context, sessionId string) (*entity.Session, error) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, apperror.ErrSessionNotFound
	}

	if session, found := ss.sessionCache.Get(ctx, id.String()); found {
		return session, nil
	}

	uow := ss.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, apperror.ErrSessionNotFound
	}
	return session, nil
}

func sourceDTOs(descriptors []entity.SourceDescriptor) []dto.SourceDTO {
	out := make([]dto.SourceDTO, len(descriptors))
	for i, d := range descriptors {
		out[i] = dto.SourceDTO{Type: d.Type, Name: d.Name, URL: d.URL, Content: d.Content}
	}
	return out
}
