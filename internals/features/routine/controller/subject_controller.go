package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	routineDTO "bcaroutine_backend/internals/features/routine/dto"
	routineService "bcaroutine_backend/internals/features/routine/service"
	helper "bcaroutine_backend/internals/helpers"
)

type SubjectController struct {
	Store    *routineService.SubjectStore
	Validate *validator.Validate
}

func NewSubjectController(store *routineService.SubjectStore) *SubjectController {
	return &SubjectController{Store: store, Validate: validator.New()}
}

// GET /api/routine/subjects
func (h *SubjectController) List(c *fiber.Ctx) error {
	return helper.Success(c, "OK", h.Store.List())
}

// POST /api/routine/subjects
func (h *SubjectController) Add(c *fiber.Ctx) error {
	subject, err := h.Store.Add()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save subjects")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject added", subject)
}

// PUT /api/routine/subjects/:id
// Renames cascade into schedule cells that carried the old name.
func (h *SubjectController) Rename(c *fiber.Ctx) error {
	var req routineDTO.RenameSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	subject, err := h.Store.Rename(c.Params("id"), req.Name)
	if err != nil {
		if errors.Is(err, routineService.ErrSubjectNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save subjects")
	}
	return helper.Success(c, "Subject renamed", subject)
}

// DELETE /api/routine/subjects/:id
func (h *SubjectController) Remove(c *fiber.Ctx) error {
	if err := h.Store.Remove(c.Params("id")); err != nil {
		if errors.Is(err, routineService.ErrSubjectNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save subjects")
	}
	return helper.Success(c, "Subject removed", nil)
}
