package implementation

import (
	"context"
	"encoding/json"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/model"
	"teaching-assistant-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventLogRepositoryImpl struct {
	db *gorm.DB
}

func NewEventLogRepository(db *gorm.DB) contract.EventLogRepository {
	return &EventLogRepositoryImpl{db: db}
}

func (r *EventLogRepositoryImpl) Create(ctx context.Context, event *entity.EventLog) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		payload = []byte("null")
	}
	m := &model.EventLog{
		Id:        event.Id,
		EventType: event.EventType,
		SessionId: event.SessionId,
		Payload:   datatypes.JSON(payload),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	event.CreatedAt = m.CreatedAt
	return nil
}

func (r *EventLogRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.EventLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var models []*model.EventLog
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	events := make([]*entity.EventLog, len(models))
	for i, m := range models {
		var payload map[string]interface{}
		_ = json.Unmarshal(m.Payload, &payload)
		events[i] = &entity.EventLog{
			Id:        m.Id,
			EventType: m.EventType,
			SessionId: m.SessionId,
			Payload:   payload,
			CreatedAt: m.CreatedAt,
		}
	}
	return events, nil
}
