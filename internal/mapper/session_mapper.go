package mapper

import (
	"encoding/json"
	"time"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/model"

	"gorm.io/datatypes"
)

// SessionMapper converts between the typed session entity and its JSON
// column representation. The processed-document set becomes a sorted
// list only here, at the serialization boundary.
type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:                 s.Id,
		Name:               s.Name,
		History:            marshalJSON(s.History),
		ProcessedDocuments: marshalJSON(s.ProcessedDocuments.Values()),
		InfoMessages:       marshalJSON(s.InfoMessages),
		RewrittenQuery:     marshalJSON(s.RewrittenQuery),
		SearchSources:      marshalJSON(s.SearchSources),
		DocSources:         marshalJSON(s.DocSources),
		UseWebSearch:       s.UseWebSearch,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var history []entity.Turn
	unmarshalJSON(s.History, &history)
	if history == nil {
		history = []entity.Turn{}
	}

	var processedDocs []string
	unmarshalJSON(s.ProcessedDocuments, &processedDocs)

	var infoMessages []string
	unmarshalJSON(s.InfoMessages, &infoMessages)
	if infoMessages == nil {
		infoMessages = []string{}
	}

	var rewritten entity.RewrittenQuery
	unmarshalJSON(s.RewrittenQuery, &rewritten)

	var searchSources []string
	unmarshalJSON(s.SearchSources, &searchSources)
	if searchSources == nil {
		searchSources = []string{}
	}

	var docSources []entity.SourceDescriptor
	unmarshalJSON(s.DocSources, &docSources)
	if docSources == nil {
		docSources = []entity.SourceDescriptor{}
	}

	return &entity.Session{
		Id:                 s.Id,
		Name:               s.Name,
		History:            history,
		ProcessedDocuments: entity.NewStringSet(processedDocs...),
		InfoMessages:       infoMessages,
		RewrittenQuery:     rewritten,
		SearchSources:      searchSources,
		DocSources:         docSources,
		UseWebSearch:       s.UseWebSearch,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func marshalJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(data)
}

func unmarshalJSON(data datatypes.JSON, out interface{}) {
	if len(data) == 0 {
		return
	}
	// Columns may hold SQL NULL from older rows; ignore decode errors and
	// leave the zero value in place.
	_ = json.Unmarshal(data, out)
}
