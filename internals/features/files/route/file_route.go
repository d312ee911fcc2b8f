package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileController "bcaroutine_backend/internals/features/files/controller"
	fileService "bcaroutine_backend/internals/features/files/service"
	ossHelper "bcaroutine_backend/internals/helpers/oss"
	"bcaroutine_backend/internals/realtime"
)

func FileRoutes(app *fiber.App, authMW fiber.Handler,
	db *gorm.DB, ossSvc *ossHelper.OSSService,
	local *fileService.LocalFileStore, hub *realtime.Hub,
) {
	ctrl := fileController.NewFileController(db, ossSvc, local, hub)

	files := app.Group("/api/files")
	files.Get("/", ctrl.List)
	files.Post("/", authMW, ctrl.Upload)
	files.Delete("/:id", authMW, ctrl.Delete)
}
