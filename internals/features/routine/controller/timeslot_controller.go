package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	routineDTO "bcaroutine_backend/internals/features/routine/dto"
	routineService "bcaroutine_backend/internals/features/routine/service"
	helper "bcaroutine_backend/internals/helpers"
)

type TimeSlotController struct {
	Store    *routineService.TimeSlotStore
	Validate *validator.Validate
}

func NewTimeSlotController(store *routineService.TimeSlotStore) *TimeSlotController {
	return &TimeSlotController{Store: store, Validate: validator.New()}
}

// GET /api/routine/time-slots
func (h *TimeSlotController) List(c *fiber.Ctx) error {
	return helper.Success(c, "OK", h.Store.List())
}

// POST /api/routine/time-slots
func (h *TimeSlotController) Add(c *fiber.Ctx) error {
	slot, err := h.Store.Add()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save time slots")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Time slot added", slot)
}

// PUT /api/routine/time-slots/:id
func (h *TimeSlotController) Rename(c *fiber.Ctx) error {
	var req routineDTO.RenameTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slot, err := h.Store.Rename(c.Params("id"), req.Time)
	if err != nil {
		if errors.Is(err, routineService.ErrTimeSlotNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Time slot not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save time slots")
	}
	return helper.Success(c, "Time slot renamed", slot)
}

// DELETE /api/routine/time-slots/:id
// Removal does not cascade: schedule cells keyed on this slot stay behind
// as orphans and are ignored by consumers.
func (h *TimeSlotController) Remove(c *fiber.Ctx) error {
	if err := h.Store.Remove(c.Params("id")); err != nil {
		if errors.Is(err, routineService.ErrTimeSlotNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Time slot not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save time slots")
	}
	return helper.Success(c, "Time slot removed", nil)
}
