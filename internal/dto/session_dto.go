package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Name string `json:"name"`
}

type CreateSessionResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SessionSummaryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	TurnCount int        `json:"turn_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type TurnDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SessionDetailResponse struct {
	Id                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	History            []TurnDTO   `json:"history"`
	ProcessedDocuments []string    `json:"processed_documents"`
	InfoMessages       []string    `json:"info_messages"`
	UseWebSearch       bool        `json:"use_web_search"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          *time.Time  `json:"updated_at"`
	Sources            []SourceDTO `json:"sources"`
}

type SessionSourcesResponse struct {
	SessionId  uuid.UUID   `json:"session_id"`
	DocSources []SourceDTO `json:"doc_sources"`
	WebSources []string    `json:"web_sources"`
}
