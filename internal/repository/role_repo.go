package repository

import (
	"context"

	"github.com/WallaceMuylaert/optics-api/internal/model"

	"gorm.io/gorm"
)

// RoleRepository covers the roles table and the user_roles join table.
// Roles are only ever created lazily by default-role assignment.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByName(ctx context.Context, name string) (*model.Role, error)
	Link(ctx context.Context, userID, roleID uint) error
	LinksForUser(ctx context.Context, userID uint) ([]model.UserRole, error)
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) RoleRepository { return &roleRepo{db: db} }

func (r *roleRepo) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepo) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	return &role, err
}

func (r *roleRepo) Link(ctx context.Context, userID, roleID uint) error {
	return r.db.WithContext(ctx).Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (r *roleRepo) LinksForUser(ctx context.Context, userID uint) ([]model.UserRole, error) {
	var links []model.UserRole
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&links).Error
	return links, err
}
