package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcaroutine_backend/internals/configs"
	authService "bcaroutine_backend/internals/features/auth/service"
)

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Put("/protected", AuthMiddleware(nil), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "test-secret"

	valid, _, err := authService.IssueAccessToken("admin", true)
	require.NoError(t, err)

	// Different subject so the signed string cannot collide with the valid
	// token when both are issued within the same second.
	revoked, _, err := authService.IssueAccessToken("revoked-admin", true)
	require.NoError(t, err)
	require.NoError(t, authService.BlacklistToken(nil, revoked, time.Now().Add(time.Hour)))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "no token", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "revoked token", authHeader: "Bearer " + revoked, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGatedApp()
			req := httptest.NewRequest(http.MethodPut, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/me", OptionalAuth(nil), func(c *fiber.Ctx) error {
		isAdmin, _ := c.Locals("is_admin").(bool)
		return c.JSON(fiber.Map{"is_authenticated": isAdmin})
	})

	// Anonymous requests pass through unauthenticated
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	token, _, err := authService.IssueAccessToken("admin", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
