package mapper

import (
	"testing"
	"time"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionMapperRoundtrip(t *testing.T) {
	m := NewSessionMapper()

	session := entity.NewSession(uuid.New(), "Physics homework")
	session.AppendTurn("user", "what is entropy?")
	session.AppendTurn("assistant", "a measure of disorder")
	session.ProcessedDocuments.Add("thermo.pdf")
	session.ProcessedDocuments.Add("https://example.com/entropy")
	session.InfoMessages = []string{"Could not process URL: https://bad.example"}
	session.RewrittenQuery = entity.RewrittenQuery{Original: "what is entropy?", Rewritten: "define entropy thermodynamics"}
	session.SearchSources = []string{"https://en.example.org/entropy"}
	session.DocSources = []entity.SourceDescriptor{
		{Type: "document", Name: "thermo.pdf", Content: "entropy is..."},
	}
	session.UseWebSearch = false

	got := m.ToEntity(m.ToModel(session))

	assert.Equal(t, session.Id, got.Id)
	assert.Equal(t, session.Name, got.Name)
	assert.Equal(t, session.History, got.History)
	assert.Equal(t, session.ProcessedDocuments.Values(), got.ProcessedDocuments.Values())
	assert.Equal(t, session.InfoMessages, got.InfoMessages)
	assert.Equal(t, session.RewrittenQuery, got.RewrittenQuery)
	assert.Equal(t, session.SearchSources, got.SearchSources)
	assert.Equal(t, session.DocSources, got.DocSources)
	assert.False(t, got.UseWebSearch)
}

func TestSessionMapperFreshSession(t *testing.T) {
	m := NewSessionMapper()

	got := m.ToEntity(m.ToModel(entity.NewSession(uuid.New(), "Untitled Session")))

	assert.NotNil(t, got.History)
	assert.Empty(t, got.History)
	assert.Equal(t, 0, got.ProcessedDocuments.Len())
	assert.True(t, got.UseWebSearch)
	assert.Nil(t, got.UpdatedAt)
}

func TestSessionMapperToleratesNullColumns(t *testing.T) {
	m := NewSessionMapper()

	got := m.ToEntity(&model.Session{
		Id:        uuid.New(),
		Name:      "legacy row",
		CreatedAt: time.Now(),
	})

	assert.NotNil(t, got.History)
	assert.NotNil(t, got.InfoMessages)
	assert.NotNil(t, got.SearchSources)
	assert.NotNil(t, got.DocSources)
	assert.Equal(t, 0, got.ProcessedDocuments.Len())
}

func TestSessionMapperNil(t *testing.T) {
	m := NewSessionMapper()

	assert.Nil(t, m.ToModel(nil))
	assert.Nil(t, m.ToEntity(nil))
}
