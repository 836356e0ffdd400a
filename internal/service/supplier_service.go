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

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) (*dto.SupplierResponse, error)
}

type supplierService struct {
	suppliers repository.SupplierRepository
}

func NewSupplierService(suppliers repository.SupplierRepository) SupplierService {
	return &supplierService{suppliers: suppliers}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if _, err := s.suppliers.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:     req.Name,
		Email:    req.Email,
		CNPJ:     req.CNPJ,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := supplier.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or cnpj already registered", ErrConflict)
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context, skip, limit int) ([]dto.SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		resp[i] = *supplierToResponse(&suppliers[i])
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
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
		supplier.Name = req.Name.Value
	}
	if req.Email.Set {
		if req.Email.Null {
			return nil, fmt.Errorf("%w: email cannot be null", ErrValidation)
		}
		supplier.Email = req.Email.Value
	}
	if req.Phone.Set {
		if req.Phone.Null {
			supplier.Phone = nil
		} else {
			phone := req.Phone.Value
			supplier.Phone = &phone
		}
	}
	if req.Password.Set {
		if req.Password.Null {
			return nil, fmt.Errorf("%w: password cannot be null", ErrValidation)
		}
		if err := supplier.SetPassword(req.Password.Value); err != nil {
			return nil, err
		}
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CNPJ:      s.CNPJ,
		Phone:     s.Phone,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
