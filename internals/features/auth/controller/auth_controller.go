package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "bcaroutine_backend/internals/features/auth/service"
)

type AuthController struct {
	DB *gorm.DB // nil in local mode
}

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ac.DB, c)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	return authService.Me(c)
}
