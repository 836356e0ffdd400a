package service_test

import (
	"context"
	"testing"

	"github.com/WallaceMuylaert/optics-api/internal/dto"
	"github.com/WallaceMuylaert/optics-api/internal/model"
	"github.com/WallaceMuylaert/optics-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) service.AuthService {
	t.Helper()
	users := newStubUserRepo()
	suppliers := newStubSupplierRepo()

	user := &model.User{Name: "Ana", Email: "ana@x.com", CPF: "1", IsActive: true}
	require.NoError(t, user.SetPassword("user-pw"))
	require.NoError(t, users.Create(context.Background(), user))

	supplier := &model.Supplier{Name: "Lentes SA", Email: "lentes@x.com", CNPJ: "9", IsActive: true}
	require.NoError(t, supplier.SetPassword("supplier-pw"))
	require.NoError(t, suppliers.Create(context.Background(), supplier))

	return service.NewAuthService(users, suppliers)
}

func TestLoginUserMatch(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "user-pw"})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.UserType)
	assert.Equal(t, service.PlaceholderToken, resp.Token)
}

func TestLoginFallsThroughToSupplier(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "lentes@x.com", Password: "supplier-pw"})
	require.NoError(t, err)
	assert.Equal(t, "supplier", resp.UserType)
	assert.Equal(t, service.PlaceholderToken, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "nope"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ghost@x.com", Password: "pw"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUserWinsOverSupplierOnSharedEmail(t *testing.T) {
	users := newStubUserRepo()
	suppliers := newStubSupplierRepo()
	ctx := context.Background()

	user := &model.User{Name: "Dup", Email: "dup@x.com", CPF: "1", IsActive: true}
	require.NoError(t, user.SetPassword("shared-pw"))
	require.NoError(t, users.Create(ctx, user))

	supplier := &model.Supplier{Name: "Dup", Email: "dup@x.com", CNPJ: "9", IsActive: true}
	require.NoError(t, supplier.SetPassword("shared-pw"))
	require.NoError(t, suppliers.Create(ctx, supplier))

	resp, err := service.NewAuthService(users, suppliers).Login(ctx, dto.LoginRequest{Email: "dup@x.com", Password: "shared-pw"})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.UserType, "user table is checked first")
}
