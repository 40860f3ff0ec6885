package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventType string         `gorm:"type:text;not null;index"`
	SessionId uuid.UUID      `gorm:"type:uuid;index"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (EventLog) TableName() string {
	return "event_logs"
}
