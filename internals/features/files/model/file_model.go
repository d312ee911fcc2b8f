package model

import (
	"time"

	"github.com/google/uuid"
)

// FileModel is a hosted-mode file metadata row. The subject reference is by
// name, not id; it can dangle after a subject rename that skips files.
type FileModel struct {
	FileID          uuid.UUID `gorm:"column:file_id;type:uuid;default:gen_random_uuid();primaryKey" json:"file_id"`
	FileURL         string    `gorm:"column:file_url;type:text;not null" json:"file_url"`
	FileName        string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	FileSubjectName string    `gorm:"column:file_subject_name;type:varchar(120)" json:"file_subject_name"`
	FileSize        int64     `gorm:"column:file_size;not null;default:0" json:"file_size"`
	FileType        string    `gorm:"column:file_type;type:varchar(120)" json:"file_type"`
	FileUploadedAt  time.Time `gorm:"column:file_uploaded_at;not null;autoCreateTime" json:"file_uploaded_at"`
}

func (FileModel) TableName() string { return "files" }

// LocalFileMeta is the local-mode record. Only metadata survives: the
// binary itself is not persisted in local mode, and the API says so via
// ContentPersisted instead of silently handing back empty files.
type LocalFileMeta struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	FileName         string `json:"file_name"`
	SubjectName      string `json:"subject_name"`
	Size             int64  `json:"size"`
	Type             string `json:"type"`
	UploadDate       string `json:"upload_date"`
	ContentPersisted bool   `json:"content_persisted"`
}
