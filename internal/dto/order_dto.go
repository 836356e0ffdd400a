package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateOrderRequest struct {
	UserID      uint   `json:"user_id"      validate:"required"`
	SupplierID  uint   `json:"supplier_id"  validate:"required"`
	ProductType string `json:"product_type" validate:"required"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0"`
	// Status defaults to "Pending" when omitted.
	Status string `json:"status"`
}

type UpdateOrderRequest struct {
	ProductType Optional[string] `json:"product_type"`
	Quantity    Optional[int]    `json:"quantity"`
	Status      Optional[string] `json:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	SupplierID  uint      `json:"supplier_id"`
	ProductType string    `json:"product_type"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
