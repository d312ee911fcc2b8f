package routes

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "bcaroutine_backend/internals/features/auth/route"
	contentRoute "bcaroutine_backend/internals/features/content/route"
	fileRoute "bcaroutine_backend/internals/features/files/route"
	fileService "bcaroutine_backend/internals/features/files/service"
	routineRoute "bcaroutine_backend/internals/features/routine/route"
	routineService "bcaroutine_backend/internals/features/routine/service"
	ossHelper "bcaroutine_backend/internals/helpers/oss"
	authMW "bcaroutine_backend/internals/middlewares/auth"
	"bcaroutine_backend/internals/realtime"
)

// Deps carries everything the route tree needs. DB and OSS are nil in
// local mode.
type Deps struct {
	DB         *gorm.DB
	OSS        *ossHelper.OSSService
	Hub        *realtime.Hub
	Schedule   *routineService.ScheduleStore
	TimeSlots  *routineService.TimeSlotStore
	Subjects   *routineService.SubjectStore
	LocalFiles *fileService.LocalFileStore
}

func SetupRoutes(app *fiber.App, d Deps) {
	gate := authMW.AuthMiddleware(d.DB)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, d.DB)

	log.Println("[INFO] Setting up RoutineRoutes...")
	routineRoute.RoutineRoutes(app, gate, d.Schedule, d.TimeSlots, d.Subjects)

	log.Println("[INFO] Setting up FileRoutes...")
	fileRoute.FileRoutes(app, gate, d.DB, d.OSS, d.LocalFiles, d.Hub)

	if d.DB != nil {
		log.Println("[INFO] Setting up ContentRoutes...")
		contentRoute.ContentRoutes(app, gate, d.DB, d.Hub)
	}

	// Realtime change feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/updates", websocket.New(d.Hub.Handler()))

	// Unmatched routes: log the attempted path, render a static fallback.
	app.Use(func(c *fiber.Ctx) error {
		log.Printf("[404] %s %s", c.Method(), c.OriginalURL())
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":    fiber.StatusNotFound,
			"status":  "error",
			"message": "Page not found",
		})
	})
}
