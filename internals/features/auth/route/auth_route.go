package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bcaroutine_backend/internals/features/auth/controller"
	authMW "bcaroutine_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	// No login rate limiter: the gate allows unlimited attempts.
	grp.Post("/login", ctrl.Login)
	grp.Post("/logout", ctrl.Logout)
	grp.Get("/me", authMW.OptionalAuth(db), ctrl.Me)
}
