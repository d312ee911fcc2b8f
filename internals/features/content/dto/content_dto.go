package dto

import (
	"strings"
	"time"
)

type UpdateContentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
	// BaseUpdatedAt, when set, is the updated_at the editor last saw. An
	// upsert against a newer row is rejected instead of last-write-wins.
	BaseUpdatedAt *time.Time `json:"base_updated_at"`
}

func (r *UpdateContentRequest) Normalize() { r.Content = strings.TrimSpace(r.Content) }

type ContentEvent struct {
	Section   string `json:"section"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at"`
}
