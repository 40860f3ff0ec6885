package contract

import (
	"context"

	"teaching-assistant-be/internal/entity"
)

type EventLogRepository interface {
	Create(ctx context.Context, event *entity.EventLog) error
	FindRecent(ctx context.Context, limit int) ([]*entity.EventLog, error)
}
