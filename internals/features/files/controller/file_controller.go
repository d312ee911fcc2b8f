package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileModel "bcaroutine_backend/internals/features/files/model"
	fileService "bcaroutine_backend/internals/features/files/service"
	helper "bcaroutine_backend/internals/helpers"
	ossHelper "bcaroutine_backend/internals/helpers/oss"
	"bcaroutine_backend/internals/realtime"
)

// MaxUploadSize is enforced here at the boundary; an oversized file creates
// neither an object nor a row.
const MaxUploadSize = 10 * 1024 * 1024

type FileController struct {
	DB    *gorm.DB                    // hosted mode
	OSS   *ossHelper.OSSService       // hosted mode
	Local *fileService.LocalFileStore // local mode
	Hub   *realtime.Hub
}

func NewFileController(db *gorm.DB, ossSvc *ossHelper.OSSService, local *fileService.LocalFileStore, hub *realtime.Hub) *FileController {
	return &FileController{DB: db, OSS: ossSvc, Local: local, Hub: hub}
}

func (h *FileController) hosted() bool { return h.DB != nil && h.OSS != nil }

// GET /api/files
func (h *FileController) List(c *fiber.Ctx) error {
	if !h.hosted() {
		return helper.Success(c, "OK", h.Local.List())
	}
	var rows []fileModel.FileModel
	if err := h.DB.Order("file_uploaded_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load files")
	}
	return helper.Success(c, "OK", rows)
}

// POST /api/files
// Hosted mode writes the object first, then the metadata row. An OSS
// failure leaves no row behind; a row failure leaves the object behind
// (surfaced to the user, nothing rolled back).
func (h *FileController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file provided")
	}
	if fh.Size > MaxUploadSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "File exceeds the 10 MB limit")
	}
	subjectName := strings.TrimSpace(c.FormValue("subject_name"))
	displayName := strings.TrimSpace(c.FormValue("name"))
	if displayName == "" {
		displayName = fh.Filename
	}

	if !h.hosted() {
		mimeType := fh.Header.Get(fiber.HeaderContentType)
		meta, err := h.Local.Add(displayName, fh.Filename, subjectName, mimeType, fh.Size)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save file record")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "File recorded (content not persisted in local mode)", meta)
	}

	key, contentType, err := h.OSS.UploadFromFormFile(c.UserContext(), fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to upload file")
	}

	row := fileModel.FileModel{
		FileURL:         h.OSS.PublicURL(key),
		FileName:        displayName,
		FileSubjectName: subjectName,
		FileSize:        fh.Size,
		FileType:        contentType,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save file record")
	}

	h.Hub.Publish(realtime.EventFileCreated, row)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "File uploaded", row)
}

// DELETE /api/files/:id
// Removes the metadata row only; the stored object stays behind.
func (h *FileController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if !h.hosted() {
		if err := h.Local.Remove(id); err != nil {
			if errors.Is(err, fileService.ErrFileNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "File not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete file")
		}
		return helper.Success(c, "File deleted", nil)
	}

	res := h.DB.Where("file_id = ?", id).Delete(&fileModel.FileModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete file")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	}

	h.Hub.Publish(realtime.EventFileDeleted, fiber.Map{"file_id": id})
	return helper.Success(c, "File deleted", nil)
}
