package repository

import (
	"context"

	"github.com/WallaceMuylaert/optics-api/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(ctx context.Context, a *model.Address) error
	FindByID(ctx context.Context, id uint) (*model.Address, error)
	List(ctx context.Context, skip, limit int) ([]model.Address, error)
	Update(ctx context.Context, a *model.Address) error
	Delete(ctx context.Context, id uint) error
}

type addressRepo struct{ db *gorm.DB }

func NewAddressRepository(db *gorm.DB) AddressRepository { return &addressRepo{db: db} }

func (r *addressRepo) Create(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *addressRepo) FindByID(ctx context.Context, id uint) (*model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *addressRepo) List(ctx context.Context, skip, limit int) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&addresses).Error
	return addresses, err
}

func (r *addressRepo) Update(ctx context.Context, a *model.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *addressRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Address{}, id).Error
}
