package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contentDTO "bcaroutine_backend/internals/features/content/dto"
	contentModel "bcaroutine_backend/internals/features/content/model"
	helper "bcaroutine_backend/internals/helpers"
	"bcaroutine_backend/internals/realtime"
)

type ContentController struct {
	DB       *gorm.DB
	Hub      *realtime.Hub
	Validate *validator.Validate
}

func NewContentController(db *gorm.DB, hub *realtime.Hub) *ContentController {
	return &ContentController{DB: db, Hub: hub, Validate: validator.New()}
}

// GET /api/content
// Full section → text map for render.
func (h *ContentController) List(c *fiber.Ctx) error {
	var rows []contentModel.ContentModel
	if err := h.DB.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load content")
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ContentSection] = row.ContentBody
	}
	return helper.Success(c, "OK", out)
}

// PUT /api/content/:section
// Upsert keyed on section, then broadcast to connected clients. When the
// request carries base_updated_at and the stored row is newer, the write is
// refused (version stamp instead of blind last-write-wins).
func (h *ContentController) Update(c *fiber.Ctx) error {
	section := c.Params("section")
	if section == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing section")
	}

	var req contentDTO.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var saved contentModel.ContentModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.BaseUpdatedAt != nil {
			var current contentModel.ContentModel
			err := tx.Where("content_section = ?", section).First(&current).Error
			if err == nil && current.ContentUpdatedAt.After(*req.BaseUpdatedAt) {
				return fiber.NewError(fiber.StatusConflict, "Section was edited by someone else")
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load content")
			}
		}

		saved = contentModel.ContentModel{
			ContentSection:   section,
			ContentBody:      req.Content,
			ContentUpdatedAt: time.Now(),
		}
		// Returning refreshes saved with the stored row, so the conflict-
		// update path reports the existing row's id instead of a zero uuid.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_section"}},
			DoUpdates: clause.AssignmentColumns([]string{"content_body", "content_updated_at"}),
		}, clause.Returning{}).Create(&saved).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save changes")
		}
		return nil
	})
	if err != nil {
		return err
	}

	h.Hub.Publish(realtime.EventContentUpdated, contentDTO.ContentEvent{
		Section:   section,
		Content:   saved.ContentBody,
		UpdatedAt: saved.ContentUpdatedAt.Format(time.RFC3339),
	})
	return helper.Success(c, "Changes saved", saved)
}
