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

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := &model.Order{
		UserID:      req.UserID,
		SupplierID:  req.SupplierID,
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		Status:      req.Status,
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) List(ctx context.Context, skip, limit int) ([]dto.OrderResponse, error) {
	orders, err := s.orders.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = *orderToResponse(&orders[i])
	}
	return resp, nil
}

func (s *orderService) Update(ctx context.Context, id uint, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.ProductType.Set {
		if req.ProductType.Null {
			return nil, fmt.Errorf("%w: product_type cannot be null", ErrValidation)
		}
		order.ProductType = req.ProductType.Value
	}
	if req.Quantity.Set {
		if req.Quantity.Null {
			return nil, fmt.Errorf("%w: quantity cannot be null", ErrValidation)
		}
		if req.Quantity.Value <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		order.Quantity = req.Quantity.Value
	}
	if req.Status.Set {
		if req.Status.Null {
			return nil, fmt.Errorf("%w: status cannot be null", ErrValidation)
		}
		order.Status = req.Status.Value
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) Delete(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		SupplierID:  o.SupplierID,
		ProductType: o.ProductType,
		Quantity:    o.Quantity,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
