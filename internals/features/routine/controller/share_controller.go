package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bcaroutine_backend/internals/configs"
	routineDTO "bcaroutine_backend/internals/features/routine/dto"
	routineService "bcaroutine_backend/internals/features/routine/service"
	helper "bcaroutine_backend/internals/helpers"
)

type ShareController struct {
	Schedule  *routineService.ScheduleStore
	TimeSlots *routineService.TimeSlotStore
	Validate  *validator.Validate
}

func NewShareController(schedule *routineService.ScheduleStore, timeSlots *routineService.TimeSlotStore) *ShareController {
	return &ShareController{Schedule: schedule, TimeSlots: timeSlots, Validate: validator.New()}
}

// GET /api/share/export
// Snapshot download of the grid plus slot list, tagged so import can tell
// the document apart from arbitrary JSON.
func (h *ShareController) Export(c *fiber.Ctx) error {
	doc := routineDTO.RoutineExport{
		Type:       routineDTO.ExportTypeTag,
		ExportedAt: time.Now().Format(time.RFC3339),
		Schedule:   h.Schedule.ListCells(),
		TimeSlots:  h.TimeSlots.List(),
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="class-routine.json"`)
	return c.JSON(doc)
}

// POST /api/share/import
// Round-trip counterpart of Export: replaces the grid and slot list with
// the document's contents.
func (h *ShareController) Import(c *fiber.Ctx) error {
	var req routineDTO.ImportRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.Schedule.Replace(req.Schedule); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save schedule")
	}
	if err := h.TimeSlots.Replace(req.TimeSlots); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save time slots")
	}
	return helper.Success(c, "Routine imported", fiber.Map{
		"cells":      len(req.Schedule),
		"time_slots": len(req.TimeSlots),
	})
}

// GET /api/share/link
// The view flag only hides mutation UI on the client; it is not enforced
// server-side.
func (h *ShareController) Link(c *fiber.Ctx) error {
	link := configs.PublicBaseURL + "/"
	if c.QueryBool("view", true) {
		link = fmt.Sprintf("%s/?view=1", configs.PublicBaseURL)
	}
	return helper.Success(c, "OK", fiber.Map{"url": link})
}
