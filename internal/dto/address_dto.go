package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateAddressRequest allows either owner reference (or both, or
// neither) to be absent.
type CreateAddressRequest struct {
	CEP        string  `json:"cep"        validate:"required"`
	Street     string  `json:"street"     validate:"required"`
	Complement *string `json:"complement"`
	State      string  `json:"state"      validate:"required"`
	Number     string  `json:"number"     validate:"required"`
	UserID     *uint   `json:"user_id"`
	SupplierID *uint   `json:"supplier_id"`
}

type UpdateAddressRequest struct {
	CEP        Optional[string] `json:"cep"`
	Street     Optional[string] `json:"street"`
	Complement Optional[string] `json:"complement"`
	State      Optional[string] `json:"state"`
	Number     Optional[string] `json:"number"`
	UserID     Optional[uint]   `json:"user_id"`
	SupplierID Optional[uint]   `json:"supplier_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AddressResponse struct {
	ID         uint    `json:"id"`
	CEP        string  `json:"cep"`
	Street     string  `json:"street"`
	Complement *string `json:"complement"`
	State      string  `json:"state"`
	Number     string  `json:"number"`
	UserID     *uint   `json:"user_id"`
	SupplierID *uint   `json:"supplier_id"`
}
