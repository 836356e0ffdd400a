package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/WallaceMuylaert/optics-api/internal/infra"
	"github.com/WallaceMuylaert/optics-api/internal/model"
	"github.com/WallaceMuylaert/optics-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Tests in this file run against a real sqlite file in a temp dir, so
// unique indexes, foreign keys and cascades behave exactly as they do
// in production.

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func newUser(t *testing.T, repo repository.UserRepository, email, cpf string) *model.User {
	t.Helper()
	u := &model.User{Name: "Test", Email: email, CPF: cpf, IsActive: true}
	require.NoError(t, u.SetPassword("pw"))
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestCreateUserGeneratesIDAndTimestamps(t *testing.T) {
	repo := repository.NewUserRepository(testDB(t))

	u1 := newUser(t, repo, "a@x.com", "1")
	u2 := newUser(t, repo, "b@x.com", "2")

	assert.Equal(t, uint(1), u1.ID)
	assert.Equal(t, uint(2), u2.ID)
	assert.False(t, u1.CreatedAt.IsZero())
	assert.False(t, u1.UpdatedAt.IsZero())
}

func TestDuplicateEmailTranslatedToDuplicatedKey(t *testing.T) {
	repo := repository.NewUserRepository(testDB(t))
	ctx := context.Background()

	newUser(t, repo, "a@x.com", "1")

	dup := &model.User{Name: "Dup", Email: "a@x.com", CPF: "2", Password: "x", IsActive: true}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	users, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, users, 1, "failed insert must not leave a row")
}

func TestDuplicateCPFTranslatedToDuplicatedKey(t *testing.T) {
	repo := repository.NewUserRepository(testDB(t))

	newUser(t, repo, "a@x.com", "1")

	dup := &model.User{Name: "Dup", Email: "b@x.com", CPF: "1", Password: "x", IsActive: true}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFindByIDMissReturnsRecordNotFound(t *testing.T) {
	repo := repository.NewUserRepository(testDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPagination(t *testing.T) {
	repo := repository.NewUserRepository(testDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		newUser(t, repo, string(rune('a'+i))+"@x.com", string(rune('1'+i)))
	}

	page, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint(3), page[0].ID)
	assert.Equal(t, uint(4), page[1].ID)

	empty, err := repo.List(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteUserCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	users := repository.NewUserRepository(db)
	suppliers := repository.NewSupplierRepository(db)
	orders := repository.NewOrderRepository(db)
	addresses := repository.NewAddressRepository(db)
	roles := repository.NewRoleRepository(db)

	user := newUser(t, users, "ana@x.com", "123")

	supplier := &model.Supplier{Name: "Lentes SA", Email: "l@x.com", CNPJ: "9", Password: "x", IsActive: true}
	require.NoError(t, suppliers.Create(ctx, supplier))

	order := &model.Order{UserID: user.ID, SupplierID: supplier.ID, ProductType: "lenses", Quantity: 2, Status: "Pending"}
	require.NoError(t, orders.Create(ctx, order))

	address := &model.Address{CEP: "20000-000", Street: "Rua A", State: "RJ", Number: "10", UserID: &user.ID}
	require.NoError(t, addresses.Create(ctx, address))

	role := &model.Role{Name: model.DefaultRoleName}
	require.NoError(t, roles.Create(ctx, role))
	require.NoError(t, roles.Link(ctx, user.ID, role.ID))

	require.NoError(t, users.Delete(ctx, user.ID))

	_, err := orders.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "owned order must be gone")
	_, err = addresses.FindByID(ctx, address.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "owned address must be gone")

	links, err := roles.LinksForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, links, "role link must be gone")

	// The role row itself and the supplier survive.
	_, err = roles.FindByName(ctx, model.DefaultRoleName)
	assert.NoError(t, err)
	_, err = suppliers.FindByID(ctx, supplier.ID)
	assert.NoError(t, err)
}

func TestDeleteSupplierCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	users := repository.NewUserRepository(db)
	suppliers := repository.NewSupplierRepository(db)
	orders := repository.NewOrderRepository(db)
	addresses := repository.NewAddressRepository(db)

	user := newUser(t, users, "ana@x.com", "123")

	supplier := &model.Supplier{Name: "Lentes SA", Email: "l@x.com", CNPJ: "9", Password: "x", IsActive: true}
	require.NoError(t, suppliers.Create(ctx, supplier))

	order := &model.Order{UserID: user.ID, SupplierID: supplier.ID, ProductType: "frames", Quantity: 1, Status: "Pending"}
	require.NoError(t, orders.Create(ctx, order))

	address := &model.Address{CEP: "20000-000", Street: "Rua B", State: "SP", Number: "7", SupplierID: &supplier.ID}
	require.NoError(t, addresses.Create(ctx, address))

	require.NoError(t, suppliers.Delete(ctx, supplier.ID))

	_, err := orders.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = addresses.FindByID(ctx, address.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = users.FindByID(ctx, user.ID)
	assert.NoError(t, err, "the user on the order must survive")
}

func TestRoleNameUniqueIndexResolvesRace(t *testing.T) {
	roles := repository.NewRoleRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, roles.Create(ctx, &model.Role{Name: model.DefaultRoleName}))

	err := roles.Create(ctx, &model.Role{Name: model.DefaultRoleName})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey, "second lazy create loses to the unique index")
}

func TestOrderDefaultStatusAtStore(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	users := repository.NewUserRepository(db)
	suppliers := repository.NewSupplierRepository(db)
	orders := repository.NewOrderRepository(db)

	user := newUser(t, users, "ana@x.com", "123")
	supplier := &model.Supplier{Name: "Lentes SA", Email: "l@x.com", CNPJ: "9", Password: "x", IsActive: true}
	require.NoError(t, suppliers.Create(ctx, supplier))

	order := &model.Order{UserID: user.ID, SupplierID: supplier.ID, ProductType: "lenses", Quantity: 2}
	require.NoError(t, orders.Create(ctx, order))

	stored, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, stored.Status)
}
