package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventLog is an audit record of a processing event (turn completed,
// document processed, session deleted), written by the event consumer.
type EventLog struct {
	Id        uuid.UUID
	EventType string
	SessionId uuid.UUID
	Payload   map[string]interface{}
	CreatedAt time.Time
}
