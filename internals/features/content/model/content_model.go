package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentModel is one editable UI section's override text.
type ContentModel struct {
	ContentID        uuid.UUID `gorm:"column:content_id;type:uuid;default:gen_random_uuid();primaryKey" json:"content_id"`
	ContentSection   string    `gorm:"column:content_section;type:varchar(80);not null;uniqueIndex" json:"content_section"`
	ContentBody      string    `gorm:"column:content_body;type:text;not null" json:"content_body"`
	ContentUpdatedAt time.Time `gorm:"column:content_updated_at;not null;autoUpdateTime" json:"content_updated_at"`
}

func (ContentModel) TableName() string { return "content" }
