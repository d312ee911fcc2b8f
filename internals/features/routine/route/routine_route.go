package route

import (
	"github.com/gofiber/fiber/v2"

	routineController "bcaroutine_backend/internals/features/routine/controller"
	routineService "bcaroutine_backend/internals/features/routine/service"
)

// RoutineRoutes mounts the grid, slot, subject, share and analytics
// endpoints. Reads are public; mutations sit behind the auth gate.
func RoutineRoutes(app *fiber.App, authMW fiber.Handler,
	schedule *routineService.ScheduleStore,
	timeSlots *routineService.TimeSlotStore,
	subjects *routineService.SubjectStore,
) {
	scheduleCtrl := routineController.NewScheduleController(schedule)
	slotCtrl := routineController.NewTimeSlotController(timeSlots)
	subjectCtrl := routineController.NewSubjectController(subjects)
	shareCtrl := routineController.NewShareController(schedule, timeSlots)
	analyticsCtrl := routineController.NewAnalyticsController(schedule, subjects)

	routine := app.Group("/api/routine")

	routine.Get("/schedule", scheduleCtrl.List)
	routine.Put("/schedule/:cellKey", authMW, scheduleCtrl.Upsert)
	routine.Delete("/schedule/:cellKey", authMW, scheduleCtrl.Delete)

	routine.Get("/time-slots", slotCtrl.List)
	routine.Post("/time-slots", authMW, slotCtrl.Add)
	routine.Put("/time-slots/:id", authMW, slotCtrl.Rename)
	routine.Delete("/time-slots/:id", authMW, slotCtrl.Remove)

	routine.Get("/subjects", subjectCtrl.List)
	routine.Post("/subjects", authMW, subjectCtrl.Add)
	routine.Put("/subjects/:id", authMW, subjectCtrl.Rename)
	routine.Delete("/subjects/:id", authMW, subjectCtrl.Remove)

	share := app.Group("/api/share")
	share.Get("/export", shareCtrl.Export)
	share.Post("/import", authMW, shareCtrl.Import)
	share.Get("/link", shareCtrl.Link)

	app.Get("/api/analytics/subjects", analyticsCtrl.Subjects)
}
