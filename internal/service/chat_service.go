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
	"teaching-assistant-be/pkg/agent"
	"teaching-assistant-be/pkg/events"
	"teaching-assistant-be/pkg/ingest"
	"teaching-assistant-be/pkg/rag/prompt"
	"teaching-assistant-be/pkg/rag/relevance"
	"teaching-assistant-be/pkg/vectorstore"
	"teaching-assistant-be/pkg/websearch"

	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	RewriteQuery(ctx context.Context, request *dto.RewriteQueryRequest) (*dto.RewriteQueryResponse, error)
	Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error)
}

// chatService runs the turn pipeline: load session, ingest linked URLs,
// rewrite the query, retrieve grounding (documents first, web fallback),
// generate the answer, and persist the updated session. Rewrite and
// generation failures abort the turn with nothing persisted; every other
// stage degrades softly.
type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionCache cache.ISessionCache
	vectorCache  *vectorstore.Cache
	rewriter     agent.QueryRewriter
	responder    agent.Responder
	titler       agent.Titler
	gate         *relevance.Gate
	webSearch    websearch.Provider
	ingestor     ingest.Ingestor
	publisher    IPublisherService
	logger       logger.ILogger
	ragLogger    logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessionCache cache.ISessionCache,
	vectorCache *vectorstore.Cache,
	rewriter agent.QueryRewriter,
	responder agent.Responder,
	titler agent.Titler,
	gate *relevance.Gate,
	webSearch websearch.Provider,
	ingestor ingest.Ingestor,
	publisher IPublisherService,
	log logger.ILogger,
	ragLog logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		sessionCache: sessionCache,
		vectorCache:  vectorCache,
		rewriter:     rewriter,
		responder:    responder,
		titler:       titler,
		gate:         gate,
		webSearch:    webSearch,
		ingestor:     ingestor,
		publisher:    publisher,
		logger:       log,
		ragLogger:    ragLog,
	}
}

func (cs *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	session := cs.resolveSession(ctx, request.SessionId)
	sessionId := session.Id.String()

	cs.ragLogger.Info("chat", "Turn started", map[string]interface{}{
		"session_id":       sessionId,
		"force_web_search": request.ForceWebSearch,
	})

	session.AppendTurn(constant.ChatRoleUser, request.Content)
	// Info messages describe the current turn only.
	session.InfoMessages = []string{}

	cs.ingestLinkedURLs(ctx, session, request.Content)

	rewritten, err := cs.rewriter.Rewrite(ctx, request.Content)
	if err != nil {
		cs.logger.Error("chat", "Query rewrite failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: query rewrite: %v", apperror.ErrProcessingFailed, err)
	}
	session.RewrittenQuery = entity.RewrittenQuery{Original: request.Content, Rewritten: rewritten}
	cs.ragLogger.Info("chat", "Query rewritten", map[string]interface{}{
		"session_id": sessionId,
		"original":   request.Content,
		"rewritten":  rewritten,
	})

	builder := prompt.NewBuilder()
	var docChunks []entity.DocumentChunk

	if !request.ForceWebSearch {
		store := cs.vectorCache.GetOrCreate(sessionId)
		var relevant bool
		relevant, docChunks = cs.gate.Retrieve(ctx, store, rewritten)
		if relevant {
			builder.AddDocumentContext(docChunks)
			session.DocSources = sourceDescriptorsFor(docChunks)
			cs.ragLogger.Info("chat", "Document context retrieved", map[string]interface{}{
				"session_id":  sessionId,
				"chunk_count": len(docChunks),
			})
		}
	}

	var searchLinks []string
	if (request.ForceWebSearch || !builder.HasContext()) && session.UseWebSearch {
		results, links, err := cs.webSearch.Search(ctx, rewritten)
		if err != nil {
			cs.logger.Warn("chat", "Web search failed, continuing without it", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		} else if results != "" {
			builder.AddWebContext(results, links)
			searchLinks = links
			session.SearchSources = links
			cs.ragLogger.Info("chat", "Web context retrieved", map[string]interface{}{
				"session_id": sessionId,
				"link_count": len(links),
			})
		}
	}

	if !builder.HasContext() {
		session.InfoMessages = append(session.InfoMessages, constant.NoInformationFoundMessage)
	}

	answer, err := cs.responder.Respond(ctx, builder.Build(request.Content, rewritten))
	if err != nil {
		cs.logger.Error("chat", "Response generation failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: response generation: %v", apperror.ErrProcessingFailed, err)
	}
	session.AppendTurn(constant.ChatRoleAssistant, answer)

	if session.Name == constant.DefaultSessionName {
		if title, err := cs.titler.TitleFor(ctx, request.Content); err != nil {
			cs.logger.Warn("chat", "Title generation failed, keeping default name", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		} else {
			session.Name = title
		}
	}

	if err := cs.saveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: persist session: %v", apperror.ErrProcessingFailed, err)
	}

	cs.publisher.PublishEvent(ctx, events.NewTurnCompleted(
		sessionId, request.Content, len(searchLinks) > 0, len(docChunks)+len(searchLinks),
	))
	cs.ragLogger.Info("chat", "Turn completed", map[string]interface{}{
		"session_id":   sessionId,
		"doc_sources":  len(docChunks),
		"web_sources":  len(searchLinks),
		"history_size": len(session.History),
	})

	return &dto.ChatResponse{
		Content:   answer,
		Sources:   responseSources(docChunks, searchLinks),
		SessionId: sessionId,
	}, nil
}

// resolveSession loads the session by id, consulting the hot cache
// first. A missing or unparseable id bootstraps a fresh session; chat
// never answers with "session not found".
func (cs *chatService) resolveSession(ctx context.Context, requested *string) *entity.Session {
	id := uuid.New()
	if requested != nil && *requested != "" {
		if parsed, err := uuid.Parse(*requested); err == nil {
			id = parsed
		}
	}

	if session, found := cs.sessionCache.Get(ctx, id.String()); found {
		return session
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindById(ctx, id)
	if err != nil {
		cs.logger.Warn("chat", "Session lookup failed, starting fresh session", map[string]interface{}{
			"session_id": id.String(),
			"error":      err.Error(),
		})
	}
	if session == nil {
		session = entity.NewSession(id, constant.DefaultSessionName)
	}
	return session
}

// ingestLinkedURLs pulls URLs out of the message and indexes each one
// the session has not seen yet. Failures leave an info message on the
// session; they never abort the turn.
func (cs *chatService) ingestLinkedURLs(ctx context.Context, session *entity.Session, content string) {
	urls := ingest.DetectURLs(content)
	if len(urls) == 0 {
		return
	}

	store := cs.vectorCache.GetOrCreate(session.Id.String())
	if store == nil {
		return
	}

	for _, url := range urls {
		if session.ProcessedDocuments.Contains(url) {
			continue
		}
		result, err := cs.ingestor.IngestURL(ctx, url)
		if err != nil {
			cs.logger.Warn("chat", "URL ingestion failed", map[string]interface{}{
				"session_id": session.Id.String(),
				"url":        url,
				"error":      err.Error(),
			})
			session.InfoMessages = append(session.InfoMessages, fmt.Sprintf("Could not process URL: %s", url))
			continue
		}
		if err := store.AddDocuments(ctx, result.Chunks); err != nil {
			cs.logger.Warn("chat", "Failed to index URL chunks", map[string]interface{}{
				"session_id": session.Id.String(),
				"url":        url,
				"error":      err.Error(),
			})
			session.InfoMessages = append(session.InfoMessages, fmt.Sprintf("Could not process URL: %s", url))
			continue
		}
		session.ProcessedDocuments.Add(url)
		cs.ragLogger.Info("chat", "URL ingested into session index", map[string]interface{}{
			"session_id":  session.Id.String(),
			"url":         url,
			"chunk_count": len(result.Chunks),
		})
	}
}

func (cs *chatService) saveSession(ctx context.Context, session *entity.Session) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Save(ctx, session); err != nil {
		return err
	}
	cs.sessionCache.Set(ctx, session)
	return nil
}

func (cs *chatService) RewriteQuery(ctx context.Context, request *dto.RewriteQueryRequest) (*dto.RewriteQueryResponse, error) {
	rewritten, err := cs.rewriter.Rewrite(ctx, request.Query)
	if err != nil {
		return nil, fmt.Errorf("%w: query rewrite: %v", apperror.ErrProcessingFailed, err)
	}
	return &dto.RewriteQueryResponse{Original: request.Query, Rewritten: rewritten}, nil
}

func (cs *chatService) Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error) {
	results, links, err := cs.webSearch.Search(ctx, request.Query)
	if err != nil {
		return nil, fmt.Errorf("%w: web search: %v", apperror.ErrProcessingFailed, err)
	}
	return &dto.SearchResponse{Results: results, Links: links}, nil
}

func sourceDescriptorsFor(chunks []entity.DocumentChunk) []entity.SourceDescriptor {
	descriptors := make([]entity.SourceDescriptor, len(chunks))
	for i, c := range chunks {
		descriptors[i] = entity.NewSourceDescriptor(c.SourceType, c.SourceName, c.Url, c.Content)
	}
	return descriptors
}

// responseSources lists document sources first, then one bare entry per
// web link.
func responseSources(chunks []entity.DocumentChunk, links []string) []dto.SourceDTO {
	sources := make([]dto.SourceDTO, 0, len(chunks)+len(links))
	for _, c := range chunks {
		sources = append(sources, dto.SourceDTO{
			Type:    c.SourceType,
			Name:    c.SourceName,
			URL:     c.Url,
			Content: entity.PreviewContent(c.Content),
		})
	}
	for _, link := range links {
		sources = append(sources, dto.SourceDTO{
			Type: constant.SourceTypeWeb,
			Name: link,
			URL:  link,
		})
	}
	return sources
}
