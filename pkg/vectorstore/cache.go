package vectorstore

import (
	"sync"

	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/internal/repository/contract"
	"teaching-assistant-be/pkg/embedding"

	gocache "github.com/patrickmn/go-cache"
)

// Cache maps session ids to their vector index handles. Handles live
// for the process lifetime (or until Evict); the cache is unbounded.
type Cache struct {
	mu       sync.Mutex // guards the get-or-create path
	handles  *gocache.Cache
	embedder embedding.Provider
	chunks   contract.ChunkEmbeddingRepository
	logger   logger.ILogger
}

func NewCache(embedder embedding.Provider, chunks contract.ChunkEmbeddingRepository, log logger.ILogger) *Cache {
	return &Cache{
		handles:  gocache.New(gocache.NoExpiration, 0),
		embedder: embedder,
		chunks:   chunks,
		logger:   log,
	}
}

// GetOrCreate returns the session's handle, creating and caching one if
// needed. Returns nil when no vector backend is configured: callers
// must treat nil as "no retrieval available", not as an error.
// The lock makes concurrent first access yield a single handle.
func (c *Cache) GetOrCreate(sessionID string) *Store {
	if c.embedder == nil || c.chunks == nil {
		c.logger.Warn("vectorstore", "Vector backend unavailable, no index handle created", map[string]interface{}{
			"session_id": sessionID,
		})
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, found := c.handles.Get(sessionID); found {
		return cached.(*Store)
	}

	store := NewStore(sessionID, c.embedder, c.chunks)
	c.handles.Set(sessionID, store, gocache.NoExpiration)
	c.logger.Info("vectorstore", "Created vector index handle", map[string]interface{}{
		"namespace": sessionID,
	})
	return store
}

// Evict drops the cached handle when its session is deleted.
func (c *Cache) Evict(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles.Delete(sessionID)
}

// Len reports the number of active handles (health endpoint).
func (c *Cache) Len() int {
	return c.handles.ItemCount()
}

// HasBackend reports whether a vector backend is configured at all.
func (c *Cache) HasBackend() bool {
	return c.embedder != nil && c.chunks != nil
}
