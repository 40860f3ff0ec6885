package mapper

import (
	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ChunkEmbeddingMapper struct{}

func NewChunkEmbeddingMapper() *ChunkEmbeddingMapper {
	return &ChunkEmbeddingMapper{}
}

func (m *ChunkEmbeddingMapper) ToModel(e *entity.ChunkEmbedding) *model.ChunkEmbedding {
	if e == nil {
		return nil
	}
	return &model.ChunkEmbedding{
		Id:             e.Id,
		Namespace:      e.Namespace,
		SourceType:     e.SourceType,
		SourceName:     e.SourceName,
		Url:            e.Url,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ChunkEmbeddingMapper) ToEntity(c *model.ChunkEmbedding) *entity.ChunkEmbedding {
	if c == nil {
		return nil
	}
	return &entity.ChunkEmbedding{
		Id:             c.Id,
		Namespace:      c.Namespace,
		SourceType:     c.SourceType,
		SourceName:     c.SourceName,
		Url:            c.Url,
		Document:       c.Document,
		EmbeddingValue: c.EmbeddingValue.Slice(),
		ChunkIndex:     c.ChunkIndex,
		CreatedAt:      c.CreatedAt,
	}
}
