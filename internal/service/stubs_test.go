package service_test

import (
	"context"

	"github.com/WallaceMuylaert/optics-api/internal/model"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// They mimic the store contract the services rely on: sequential ids,
// gorm.ErrRecordNotFound for misses, gorm.ErrDuplicatedKey for unique
// constraint violations.

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.CPF == u.CPF {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, skip, limit int) ([]model.User, error) {
	var all []model.User
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			all = append(all, *u)
		}
	}
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

type stubRoleRepo struct {
	roles  map[uint]*model.Role
	links  []model.UserRole
	nextID uint
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[uint]*model.Role), nextID: 1}
}

func (r *stubRoleRepo) Create(_ context.Context, role *model.Role) error {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	role.ID = r.nextID
	r.nextID++
	r.roles[role.ID] = role
	return nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			copied := *role
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRoleRepo) Link(_ context.Context, userID, roleID uint) error {
	r.links = append(r.links, model.UserRole{UserID: userID, RoleID: roleID})
	return nil
}

func (r *stubRoleRepo) LinksForUser(_ context.Context, userID uint) ([]model.UserRole, error) {
	var out []model.UserRole
	for _, l := range r.links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uint]*model.Supplier), nextID: 1}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	for _, existing := range r.suppliers {
		if existing.Email == s.Email || existing.CNPJ == s.CNPJ {
			return gorm.ErrDuplicatedKey
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubSupplierRepo) FindByEmail(_ context.Context, email string) (*model.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) List(_ context.Context, skip, limit int) ([]model.Supplier, error) {
	var all []model.Supplier
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.suppliers[id]; ok {
			all = append(all, *s)
		}
	}
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	copied := *s
	r.suppliers[s.ID] = &copied
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	delete(r.suppliers, id)
	return nil
}

type stubOrderRepo struct {
	orders map[uint]*model.Order
	nextID uint
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uint]*model.Order), nextID: 1}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *stubOrderRepo) List(_ context.Context, skip, limit int) ([]model.Order, error) {
	var all []model.Order
	for id := uint(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok {
			all = append(all, *o)
		}
	}
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uint) error {
	delete(r.orders, id)
	return nil
}
