// Package events defines the domain events emitted by the assistant
// pipeline: one per completed turn, ingested document, and deleted
// session.
package events

import "time"

type Event interface {
	EventType() string
	SessionId() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

const (
	TypeTurnCompleted     = "TURN_COMPLETED"
	TypeDocumentProcessed = "DOCUMENT_PROCESSED"
	TypeSessionDeleted    = "SESSION_DELETED"
)

type baseEvent struct {
	sessionId  string
	occurredAt time.Time
}

func (e baseEvent) SessionId() string    { return e.sessionId }
func (e baseEvent) Timestamp() time.Time { return e.occurredAt }

// TurnCompleted fires after a turn is fully persisted.
type TurnCompleted struct {
	baseEvent
	Query       string
	UsedWebFall bool
	SourceCount int
}

func NewTurnCompleted(sessionId, query string, usedWebFall bool, sourceCount int) TurnCompleted {
	return TurnCompleted{
		baseEvent:   baseEvent{sessionId: sessionId, occurredAt: time.Now()},
		Query:       query,
		UsedWebFall: usedWebFall,
		SourceCount: sourceCount,
	}
}

func (e TurnCompleted) EventType() string { return TypeTurnCompleted }

func (e TurnCompleted) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":      e.sessionId,
		"query":           e.Query,
		"used_web_search": e.UsedWebFall,
		"source_count":    e.SourceCount,
		"occurred_at":     e.occurredAt.Format(time.RFC3339),
	}
}

// DocumentProcessed fires after a document or URL is chunked and
// embedded into the session's index.
type DocumentProcessed struct {
	baseEvent
	SourceName string
	SourceType string
	ChunkCount int
}

func NewDocumentProcessed(sessionId, sourceName, sourceType string, chunkCount int) DocumentProcessed {
	return DocumentProcessed{
		baseEvent:  baseEvent{sessionId: sessionId, occurredAt: time.Now()},
		SourceName: sourceName,
		SourceType: sourceType,
		ChunkCount: chunkCount,
	}
}

func (e DocumentProcessed) EventType() string { return TypeDocumentProcessed }

func (e DocumentProcessed) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":  e.sessionId,
		"source_name": e.SourceName,
		"source_type": e.SourceType,
		"chunk_count": e.ChunkCount,
		"occurred_at": e.occurredAt.Format(time.RFC3339),
	}
}

// SessionDeleted fires after a session and its vector namespace are
// removed.
type SessionDeleted struct {
	baseEvent
}

func NewSessionDeleted(sessionId string) SessionDeleted {
	return SessionDeleted{baseEvent: baseEvent{sessionId: sessionId, occurredAt: time.Now()}}
}

func (e SessionDeleted) EventType() string { return TypeSessionDeleted }

func (e SessionDeleted) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":  e.sessionId,
		"occurred_at": e.occurredAt.Format(time.RFC3339),
	}
}
