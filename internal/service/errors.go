package service

import "errors"

// Sentinel errors shared by every service. Handlers translate them
// into HTTP statuses; nothing else inspects error strings.
var (
	// ErrNotFound signals an id-based lookup miss. It is a normal
	// outcome, not a failure.
	ErrNotFound = errors.New("record not found")

	// ErrConflict signals a duplicate value for a unique field
	// (email, cpf or cnpj), detected before or during insert.
	ErrConflict = errors.New("duplicate value for unique field")

	// ErrInvalidCredentials is returned by login for both unknown
	// emails and wrong passwords, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation wraps per-field problems that gin binding cannot
	// catch, such as an explicit null for a non-nullable field.
	ErrValidation = errors.New("invalid payload")
)
