package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Session struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:text;not null"`
	History            datatypes.JSON `gorm:"type:jsonb"`
	ProcessedDocuments datatypes.JSON `gorm:"type:jsonb"`
	InfoMessages       datatypes.JSON `gorm:"type:jsonb"`
	RewrittenQuery     datatypes.JSON `gorm:"type:jsonb"`
	SearchSources      datatypes.JSON `gorm:"type:jsonb"`
	DocSources         datatypes.JSON `gorm:"type:jsonb"`
	UseWebSearch       bool           `gorm:"default:true"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Session) TableName() string {
	return "assistant_sessions"
}
