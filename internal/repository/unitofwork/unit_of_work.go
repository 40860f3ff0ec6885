package unitofwork

import (
	"context"

	"teaching-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	ChunkEmbeddingRepository() contract.ChunkEmbeddingRepository
	EventLogRepository() contract.EventLogRepository
}
