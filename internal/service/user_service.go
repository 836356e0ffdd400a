package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/WallaceMuylaert/optics-api/internal/dto"
	"github.com/WallaceMuylaert/optics-api/internal/model"
	"github.com/WallaceMuylaert/optics-api/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint) (*dto.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository) UserService {
	return &userService{users: users, roles: roles}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	// Pre-insert check so a duplicate email gets a clean conflict
	// instead of a raw constraint error. CPF duplicates are caught by
	// the unique index below.
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		CPF:      req.CPF,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or cpf already registered", ErrConflict)
		}
		return nil, err
	}

	// Post-create side effect. A failure here leaves the user row in
	// place without its role link; there is no compensation step.
	if err := s.assignDefaultRole(ctx, user.ID); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// assignDefaultRole guarantees the new user is linked to the "user"
// role, creating the role row on first use. Two concurrent first-time
// calls can both miss the lookup and race the insert; the unique index
// on roles.name rejects the loser, which then re-reads the winner's row.
func (s *userService) assignDefaultRole(ctx context.Context, userID uint) error {
	role, err := s.roles.FindByName(ctx, model.DefaultRoleName)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		role = &model.Role{Name: model.DefaultRoleName}
		if createErr := s.roles.Create(ctx, role); createErr != nil {
			if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return createErr
			}
			if role, err = s.roles.FindByName(ctx, model.DefaultRoleName); err != nil {
				return err
			}
		}
	default:
		return err
	}
	return s.roles.Link(ctx, userID, role.ID)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) List(ctx context.Context, skip, limit int) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = *userToResponse(&users[i])
	}
	return resp, nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name.Set {
		if req.Name.Null {
			return nil, fmt.Errorf("%w: name cannot be null", ErrValidation)
		}
		user.Name = req.Name.Value
	}
	if req.Email.Set {
		if req.Email.Null {
			return nil, fmt.Errorf("%w: email cannot be null", ErrValidation)
		}
		user.Email = req.Email.Value
	}
	if req.Phone.Set {
		if req.Phone.Null {
			user.Phone = nil
		} else {
			phone := req.Phone.Value
			user.Phone = &phone
		}
	}
	if req.Password.Set {
		if req.Password.Null {
			return nil, fmt.Errorf("%w: password cannot be null", ErrValidation)
		}
		if err := user.SetPassword(req.Password.Value); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CPF:       u.CPF,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
