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

type AddressService interface {
	Create(ctx context.Context, req dto.CreateAddressRequest) (*dto.AddressResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AddressResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.AddressResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateAddressRequest) (*dto.AddressResponse, error)
	Delete(ctx context.Context, id uint) (*dto.AddressResponse, error)
}

type addressService struct {
	addresses repository.AddressRepository
}

func NewAddressService(addresses repository.AddressRepository) AddressService {
	return &addressService{addresses: addresses}
}

func (s *addressService) Create(ctx context.Context, req dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	address := &model.Address{
		CEP:        req.CEP,
		Street:     req.Street,
		Complement: req.Complement,
		State:      req.State,
		Number:     req.Number,
		UserID:     req.UserID,
		SupplierID: req.SupplierID,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}
	return addressToResponse(address), nil
}

func (s *addressService) GetByID(ctx context.Context, id uint) (*dto.AddressResponse, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return addressToResponse(address), nil
}

func (s *addressService) List(ctx context.Context, skip, limit int) ([]dto.AddressResponse, error) {
	addresses, err := s.addresses.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AddressResponse, len(addresses))
	for i := range addresses {
		resp[i] = *addressToResponse(&addresses[i])
	}
	return resp, nil
}

func (s *addressService) Update(ctx context.Context, id uint, req dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.CEP.Set {
		if req.CEP.Null {
			return nil, fmt.Errorf("%w: cep cannot be null", ErrValidation)
		}
		address.CEP = req.CEP.Value
	}
	if req.Street.Set {
		if req.Street.Null {
			return nil, fmt.Errorf("%w: street cannot be null", ErrValidation)
		}
		address.Street = req.Street.Value
	}
	if req.Complement.Set {
		if req.Complement.Null {
			address.Complement = nil
		} else {
			complement := req.Complement.Value
			address.Complement = &complement
		}
	}
	if req.State.Set {
		if req.State.Null {
			return nil, fmt.Errorf("%w: state cannot be null", ErrValidation)
		}
		address.State = req.State.Value
	}
	if req.Number.Set {
		if req.Number.Null {
			return nil, fmt.Errorf("%w: number cannot be null", ErrValidation)
		}
		address.Number = req.Number.Value
	}
	if req.UserID.Set {
		if req.UserID.Null {
			address.UserID = nil
		} else {
			userID := req.UserID.Value
			address.UserID = &userID
		}
	}
	if req.SupplierID.Set {
		if req.SupplierID.Null {
			address.SupplierID = nil
		} else {
			supplierID := req.SupplierID.Value
			address.SupplierID = &supplierID
		}
	}

	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	return addressToResponse(address), nil
}

func (s *addressService) Delete(ctx context.Context, id uint) (*dto.AddressResponse, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return nil, err
	}
	return addressToResponse(address), nil
}

func addressToResponse(a *model.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		ID:         a.ID,
		CEP:        a.CEP,
		Street:     a.Street,
		Complement: a.Complement,
		State:      a.State,
		Number:     a.Number,
		UserID:     a.UserID,
		SupplierID: a.SupplierID,
	}
}
