package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bcaroutine_backend/internals/configs"
	authDTO "bcaroutine_backend/internals/features/auth/dto"
	authModel "bcaroutine_backend/internals/features/auth/model"
	helper "bcaroutine_backend/internals/helpers"
)

/* ==========================
   LOGIN
========================== */

// Login authenticates either against the static admin password (body with
// password only) or against the users table (email + password). Wrong
// credentials return 401 with no state change; attempts are not limited.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Password is required")
	}

	if input.Email == "" {
		return loginStatic(c, input.Password)
	}
	return loginUser(db, c, input)
}

// Static shared-secret variant. The session is the token itself; nothing is
// stored server-side.
func loginStatic(c *fiber.Ctx, password string) error {
	if configs.AdminPassword == "" || password != configs.AdminPassword {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid password")
	}
	token, exp, err := IssueAccessToken("admin", true)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.Success(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp.Format(time.RFC3339),
		IsAdmin:     true,
	})
}

func loginUser(db *gorm.DB, c *fiber.Ctx, input authDTO.LoginRequest) error {
	if db == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "User login requires hosted mode")
	}

	var user authModel.UserModel
	err := db.Where("user_email = ?", strings.ToLower(input.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email or password is incorrect")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email or password is incorrect")
	}

	token, exp, err := IssueAccessToken(user.UserID.String(), true)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.Success(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp.Format(time.RFC3339),
		IsAdmin:     true,
		UserName:    user.UserName,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := ExtractBearerToken(c)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "No token presented")
	}

	// Blacklist until the token's own expiry; an unparseable exp falls back
	// to the full TTL.
	expiresAt := time.Now().Add(AccessTokenTTL)
	if claims, err := ParseAccessToken(tokenString); err == nil {
		if expF, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(expF), 0)
		}
	}
	if err := BlacklistToken(db, tokenString, expiresAt); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return helper.Success(c, "Logged out", nil)
}

/* ==========================
   SESSION
========================== */

// Me reports the session flag for the presented token (if any).
func Me(c *fiber.Ctx) error {
	isAdmin, _ := c.Locals("is_admin").(bool)
	sub, _ := c.Locals("user_id").(string)
	return helper.Success(c, "OK", fiber.Map{
		"is_authenticated": isAdmin,
		"subject":          sub,
	})
}

// ExtractBearerToken reads the Authorization header or the access_token
// cookie fallback.
func ExtractBearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
