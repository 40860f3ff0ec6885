package entity

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one entry of a session's history. Turns are appended in
// chronological order and never mutated afterwards.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RewrittenQuery is the per-turn original/rewritten pair kept on the
// session for display and audit.
type RewrittenQuery struct {
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
}

type Session struct {
	Id                 uuid.UUID
	Name               string
	History            []Turn
	ProcessedDocuments StringSet
	InfoMessages       []string
	RewrittenQuery     RewrittenQuery
	SearchSources      []string
	DocSources         []SourceDescriptor
	UseWebSearch       bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// NewSession builds a fresh session record: empty history, empty document
// set, web search enabled.
func NewSession(id uuid.UUID, name string) *Session {
	return &Session{
		Id:                 id,
		Name:               name,
		History:            []Turn{},
		ProcessedDocuments: NewStringSet(),
		InfoMessages:       []string{},
		SearchSources:      []string{},
		DocSources:         []SourceDescriptor{},
		UseWebSearch:       true,
		CreatedAt:          time.Now(),
	}
}

func (s *Session) AppendTurn(role, content string) {
	s.History = append(s.History, Turn{Role: role, Content: content})
}
