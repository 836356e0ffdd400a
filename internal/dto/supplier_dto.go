package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	CNPJ     string  `json:"cnpj"     validate:"required"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"required,min=4"`
}

// UpdateSupplierRequest carries a partial merge; CNPJ is immutable
// after creation.
type UpdateSupplierRequest struct {
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Phone    Optional[string] `json:"phone"`
	Password Optional[string] `json:"password"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CNPJ      string    `json:"cnpj"`
	Phone     *string   `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
