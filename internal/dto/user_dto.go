package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	CPF      string  `json:"cpf"      validate:"required"`
	Password string  `json:"password" validate:"required,min=4"`
}

// UpdateUserRequest carries a partial merge: absent fields are left
// untouched. CPF is immutable after creation and has no field here.
type UpdateUserRequest struct {
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Phone    Optional[string] `json:"phone"`
	Password Optional[string] `json:"password"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CPF       string    `json:"cpf"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
