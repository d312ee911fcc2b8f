package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	routineDTO "bcaroutine_backend/internals/features/routine/dto"
	routineService "bcaroutine_backend/internals/features/routine/service"
	helper "bcaroutine_backend/internals/helpers"
)

type ScheduleController struct {
	Store    *routineService.ScheduleStore
	Validate *validator.Validate
}

func NewScheduleController(store *routineService.ScheduleStore) *ScheduleController {
	return &ScheduleController{Store: store, Validate: validator.New()}
}

// GET /api/routine/schedule
func (h *ScheduleController) List(c *fiber.Ctx) error {
	return helper.Success(c, "OK", h.Store.ListCells())
}

// PUT /api/routine/schedule/:cellKey
// Cell key is "<Day>-<timeSlotID>", built by the caller. The store accepts
// any key; the trim/emptiness check lives here at the boundary.
func (h *ScheduleController) Upsert(c *fiber.Ctx) error {
	cellKey := c.Params("cellKey")
	if cellKey == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing cell key")
	}

	var req routineDTO.UpsertScheduleCellRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := req.ToItem(cellKey)
	if err := h.Store.UpsertCell(cellKey, &item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save schedule")
	}
	return helper.Success(c, "Cell saved", item)
}

// DELETE /api/routine/schedule/:cellKey
func (h *ScheduleController) Delete(c *fiber.Ctx) error {
	cellKey := c.Params("cellKey")
	if cellKey == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing cell key")
	}
	if err := h.Store.UpsertCell(cellKey, nil); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save schedule")
	}
	return helper.Success(c, "Cell removed", nil)
}
