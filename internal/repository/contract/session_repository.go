package contract

import (
	"context"

	"teaching-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// Save upserts the full session record (last write wins).
	Save(ctx context.Context, session *entity.Session) error
	// FindById returns (nil, nil) when no record exists.
	FindById(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	FindAll(ctx context.Context) ([]*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
