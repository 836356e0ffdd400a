package service

import (
	"context"

	"github.com/WallaceMuylaert/optics-api/internal/dto"
	"github.com/WallaceMuylaert/optics-api/internal/repository"
)

// PlaceholderToken is what login hands back on success.
// TODO: replace with a real credential once a token scheme is chosen;
// nothing downstream consumes this value yet.
const PlaceholderToken = "dummy_token"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	users     repository.UserRepository
	suppliers repository.SupplierRepository
}

func NewAuthService(users repository.UserRepository, suppliers repository.SupplierRepository) AuthService {
	return &authService{users: users, suppliers: suppliers}
}

// Login checks the users table first, then suppliers. The first row
// whose password matches decides the returned user_type; everything
// else collapses into ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if user, err := s.users.FindByEmail(ctx, req.Email); err == nil && user.CheckPassword(req.Password) {
		return &dto.LoginResponse{Token: PlaceholderToken, UserType: "user"}, nil
	}

	if supplier, err := s.suppliers.FindByEmail(ctx, req.Email); err == nil && supplier.CheckPassword(req.Password) {
		return &dto.LoginResponse{Token: PlaceholderToken, UserType: "supplier"}, nil
	}

	return nil, ErrInvalidCredentials
}
