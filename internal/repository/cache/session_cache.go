package cache

import (
	"context"
	"encoding/json"
	"time"

	"teaching-assistant-be/internal/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "assistant:session:"
	sessionTTL       = 30 * time.Minute
)

// ISessionCache is a best-effort hot cache in front of the session
// store. A miss or a cache error always falls back to the database.
type ISessionCache interface {
	Get(ctx context.Context, id string) (*entity.Session, bool)
	Set(ctx context.Context, session *entity.Session)
	Delete(ctx context.Context, id string)
}

type RedisSessionCache struct {
	rdb *redis.Client
}

func NewRedisSessionCache(rdb *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{rdb: rdb}
}

// cachedSession flattens the session for JSON storage; the document set
// becomes a list here, like at every serialization boundary.
type cachedSession struct {
	Id                 string                    `json:"id"`
	Name               string                    `json:"name"`
	History            []entity.Turn             `json:"history"`
	ProcessedDocuments []string                  `json:"processed_documents"`
	InfoMessages       []string                  `json:"info_messages"`
	RewrittenQuery     entity.RewrittenQuery     `json:"rewritten_query"`
	SearchSources      []string                  `json:"search_sources"`
	DocSources         []entity.SourceDescriptor `json:"doc_sources"`
	UseWebSearch       bool                      `json:"use_web_search"`
	CreatedAt          time.Time                 `json:"created_at"`
}

func (c *RedisSessionCache) Get(ctx context.Context, id string) (*entity.Session, bool) {
	data, err := c.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var cached cachedSession
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}

	session := entity.NewSession(uuidOrZero(cached.Id), cached.Name)
	session.History = cached.History
	session.ProcessedDocuments = entity.NewStringSet(cached.ProcessedDocuments...)
	session.InfoMessages = cached.InfoMessages
	session.RewrittenQuery = cached.RewrittenQuery
	session.SearchSources = cached.SearchSources
	session.DocSources = cached.DocSources
	session.UseWebSearch = cached.UseWebSearch
	session.CreatedAt = cached.CreatedAt
	return session, true
}

func (c *RedisSessionCache) Set(ctx context.Context, session *entity.Session) {
	cached := cachedSession{
		Id:                 session.Id.String(),
		Name:               session.Name,
		History:            session.History,
		ProcessedDocuments: session.ProcessedDocuments.Values(),
		InfoMessages:       session.InfoMessages,
		RewrittenQuery:     session.RewrittenQuery,
		SearchSources:      session.SearchSources,
		DocSources:         session.DocSources,
		UseWebSearch:       session.UseWebSearch,
		CreatedAt:          session.CreatedAt,
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, sessionKeyPrefix+cached.Id, data, sessionTTL)
}

func (c *RedisSessionCache) Delete(ctx context.Context, id string) {
	c.rdb.Del(ctx, sessionKeyPrefix+id)
}

func uuidOrZero(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
