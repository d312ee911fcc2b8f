package dto

type LoginRequest struct {
	// Email empty → static shared-secret variant.
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
	IsAdmin     bool   `json:"is_admin"`
	UserName    string `json:"user_name,omitempty"`
}
