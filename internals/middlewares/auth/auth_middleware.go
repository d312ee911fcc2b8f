package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "bcaroutine_backend/internals/features/auth/service"
)

// AuthMiddleware gates mutation routes: bearer token (or cookie), blacklist
// check, signature and expiry validation. db may be nil in local mode.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := authService.ExtractBearerToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		if authService.IsBlacklisted(db, tokenString) {
			log.Println("[WARNING] token found in blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is revoked")
		}

		claims, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			log.Println("[ERROR] token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := authService.ValidateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		isAdmin, _ := claims["is_admin"].(bool)
		if !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Admin only")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals("user_id", sub)
		}
		c.Locals("is_admin", true)
		return c.Next()
	}
}

// OptionalAuth resolves the session flag without rejecting anonymous
// requests; used by GET /api/auth/me.
func OptionalAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := authService.ExtractBearerToken(c)
		if tokenString == "" || authService.IsBlacklisted(db, tokenString) {
			return c.Next()
		}
		claims, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			return c.Next()
		}
		if err := authService.ValidateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Next()
		}
		if isAdmin, _ := claims["is_admin"].(bool); isAdmin {
			c.Locals("is_admin", true)
			if sub, ok := claims["sub"].(string); ok {
				c.Locals("user_id", sub)
			}
		}
		return c.Next()
	}
}
