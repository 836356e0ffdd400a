package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LoginResponse reports which table matched. UserType is "user" or
// "supplier".
type LoginResponse struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}
