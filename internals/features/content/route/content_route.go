package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentController "bcaroutine_backend/internals/features/content/controller"
	"bcaroutine_backend/internals/realtime"
)

// ContentRoutes is hosted-mode only; local mode has no override table.
func ContentRoutes(app *fiber.App, authMW fiber.Handler, db *gorm.DB, hub *realtime.Hub) {
	ctrl := contentController.NewContentController(db, hub)

	content := app.Group("/api/content")
	content.Get("/", ctrl.List)
	content.Put("/:section", authMW, ctrl.Update)
}
