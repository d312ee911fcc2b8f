package controller

import (
	"github.com/gofiber/fiber/v2"

	routineDTO "bcaroutine_backend/internals/features/routine/dto"
	routineService "bcaroutine_backend/internals/features/routine/service"
	helper "bcaroutine_backend/internals/helpers"
)

type AnalyticsController struct {
	Schedule *routineService.ScheduleStore
	SubjectsStore *routineService.SubjectStore
}

func NewAnalyticsController(schedule *routineService.ScheduleStore, subjects *routineService.SubjectStore) *AnalyticsController {
	return &AnalyticsController{Schedule: schedule, SubjectsStore: subjects}
}

// GET /api/analytics/subjects
// Cell counts per subject across the grid. Cells are matched by name, so a
// cell naming a deleted subject simply counts for nothing here. Each cell
// is one hour.
func (h *AnalyticsController) Subjects(c *fiber.Ctx) error {
	cells := h.Schedule.ListCells()

	counts := make(map[string]int)
	for _, item := range cells {
		counts[item.Name]++
	}

	subjects := h.SubjectsStore.List()
	out := make([]routineDTO.SubjectAnalytics, 0, len(subjects))
	for _, s := range subjects {
		n := counts[s.Name]
		out = append(out, routineDTO.SubjectAnalytics{
			SubjectID:   s.ID,
			Name:        s.Name,
			Color:       s.Color,
			CellCount:   n,
			WeeklyHours: float64(n),
		})
	}
	return helper.Success(c, "OK", out)
}
