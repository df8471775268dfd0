package sqlite_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/ferreteria-api/pkg/config"
)

// openTestDB abre una base en memoria con el esquema ya creado.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(config.DBConfig{Path: ":memory:"})
	require.NoError(t, err, "la base en memoria debe abrir y crear el esquema")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedOrderGraph inserta cliente, vendedor, producto y una orden referenciándolos.
func seedOrderGraph(t *testing.T, db *sqlx.DB) (client *entity.Client, seller *entity.Seller, product *entity.Product, order *entity.Order) {
	t.Helper()

	client = &entity.Client{Name: "Constructora Andina", Email: "compras@andina.co"}
	require.NoError(t, sqlite.NewClientRepository(db).Create(client))

	seller = &entity.Seller{Name: "Marta Ruiz", Zone: "Norte", Email: "marta@ferreteria.co"}
	require.NoError(t, sqlite.NewSellerRepository(db).Create(seller))

	product = &entity.Product{Name: "Taladro percutor", Price: decimal.NewFromFloat(349900), Stock: 12}
	require.NoError(t, sqlite.NewProductRepository(db).Create(product))

	order = &entity.Order{
		ClientID: client.ID,
		SellerID: seller.ID,
		Date:     "2026-08-30",
		Total:    decimal.NewFromFloat(349900),
	}
	require.NoError(t, sqlite.NewOrderRepository(db).Create(order))
	return client, seller, product, order
}

func TestUserRepo_CreateYBusquedas(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewUserRepository(db)

	user := &entity.User{
		Username:     "jgomez",
		Email:        "jgomez@ferreteria.co",
		PasswordHash: "$2a$10$hashfalso",
		Role:         entity.RoleVendedor,
	}
	require.NoError(t, repo.Create(user))
	assert.Positive(t, user.ID, "Create debe asignar el ID autoincremental")

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "jgomez", byID.Username)

	byName, err := repo.FindByUsername("jgomez")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)

	// OR: coincide por email aunque el username no exista
	byEither, err := repo.FindByUsernameOrEmail("inexistente", "jgomez@ferreteria.co")
	require.NoError(t, err)
	require.NotNil(t, byEither)
	assert.Equal(t, user.ID, byEither.ID)

	missing, err := repo.FindByUsername("nadie")
	require.NoError(t, err)
	assert.Nil(t, missing, "usuario inexistente devuelve nil sin error")
}

func TestUserRepo_UsernameDuplicado_RetornaErrDuplicate(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewUserRepository(db)

	require.NoError(t, repo.Create(&entity.User{
		Username: "jgomez", Email: "jgomez@ferreteria.co", PasswordHash: "h", Role: entity.RoleVendedor,
	}))
	err := repo.Create(&entity.User{
		Username: "jgomez", Email: "otro@ferreteria.co", PasswordHash: "h", Role: entity.RoleVendedor,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSellerRepo_CRUDCompleto(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewSellerRepository(db)

	seller := &entity.Seller{Name: "Marta Ruiz", Zone: "Norte", Phone: "3001234567", Email: "marta@ferreteria.co"}
	require.NoError(t, repo.Create(seller))
	require.Positive(t, seller.ID)

	got, err := repo.GetByID(seller.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Norte", got.Zone)

	got.Zone = "Sur"
	require.NoError(t, repo.Update(got))

	updated, err := repo.GetByID(seller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sur", updated.Zone)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(seller.ID))
	gone, err := repo.GetByID(seller.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSellerRepo_EmailDuplicado_RetornaErrEmailAlreadyExists(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewSellerRepository(db)

	require.NoError(t, repo.Create(&entity.Seller{Name: "Marta", Zone: "Norte", Email: "marta@ferreteria.co"}))
	err := repo.Create(&entity.Seller{Name: "Otra", Zone: "Sur", Email: "marta@ferreteria.co"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSellerRepo_DeleteConOrdenes_RetornaErrForeignKey(t *testing.T) {
	db := openTestDB(t)
	_, seller, _, _ := seedOrderGraph(t, db)

	err := sqlite.NewSellerRepository(db).Delete(seller.ID)
	assert.ErrorIs(t, err, domain.ErrForeignKey,
		"RESTRICT: un vendedor con órdenes no se puede borrar")
}

func TestClientRepo_DeleteConOrdenes_RetornaErrForeignKey(t *testing.T) {
	db := openTestDB(t)
	client, _, _, _ := seedOrderGraph(t, db)

	err := sqlite.NewClientRepository(db).Delete(client.ID)
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

func TestProductRepo_PrecioDecimalSobreviveRoundtrip(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewProductRepository(db)

	price := decimal.RequireFromString("349900.50")
	product := &entity.Product{Name: "Taladro", Description: "Percutor 850W", Price: price, Stock: 5, Category: "herramientas"}
	require.NoError(t, repo.Create(product))

	got, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, price.Equal(got.Price), "el precio debe conservarse exacto: %s vs %s", price, got.Price)
	assert.Equal(t, 5, got.Stock)
}

func TestOrderRepo_FKInexistente_RetornaErrForeignKey(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewOrderRepository(db)

	err := repo.Create(&entity.Order{ClientID: 999, SellerID: 999, Date: "2026-08-30", Total: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrForeignKey,
		"una orden con cliente/vendedor inexistente debe fallar por FK")
}

func TestOrderRepo_DeleteConDetalles_RetornaErrForeignKey(t *testing.T) {
	db := openTestDB(t)
	_, _, product, order := seedOrderGraph(t, db)

	details := sqlite.NewOrderDetailRepository(db)
	require.NoError(t, details.Create(&entity.OrderDetail{
		OrderID: order.ID, ProductID: product.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(174950),
	}))

	err := sqlite.NewOrderRepository(db).Delete(order.ID)
	assert.ErrorIs(t, err, domain.ErrForeignKey,
		"RESTRICT: una orden con detalles no se puede borrar")
}

func TestOrderDetailRepo_ListByOrder(t *testing.T) {
	db := openTestDB(t)
	_, _, product, order := seedOrderGraph(t, db)

	details := sqlite.NewOrderDetailRepository(db)
	for i := 0; i < 3; i++ {
		require.NoError(t, details.Create(&entity.OrderDetail{
			OrderID: order.ID, ProductID: product.ID, Quantity: i + 1, UnitPrice: decimal.NewFromInt(1000),
		}))
	}

	list, err := details.ListByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 1, list[0].Quantity, "las líneas salen en orden de inserción")
	assert.Equal(t, 3, list[2].Quantity)

	empty, err := details.ListByOrder(order.ID + 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatsRepo_BaseVacia_TodoCero(t *testing.T) {
	db := openTestDB(t)

	res, err := sqlite.NewStatsRepository(db).Totals()
	require.NoError(t, err)
	assert.Zero(t, res.TotalOrders)
	assert.Zero(t, res.TotalProducts)
	assert.Zero(t, res.TotalClients)
	assert.Zero(t, res.TotalSellers)
	assert.True(t, res.TotalSales.IsZero(), "sin órdenes la suma de ventas es 0, no NULL")
}

func TestStatsRepo_TotalesTrasInserciones(t *testing.T) {
	db := openTestDB(t)
	client, seller, _, _ := seedOrderGraph(t, db)

	orders := sqlite.NewOrderRepository(db)
	require.NoError(t, orders.Create(&entity.Order{
		ClientID: client.ID, SellerID: seller.ID, Date: "2026-08-31", Total: decimal.NewFromFloat(150100),
	}))

	res, err := sqlite.NewStatsRepository(db).Totals()
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.TotalOrders)
	assert.EqualValues(t, 1, res.TotalProducts)
	assert.EqualValues(t, 1, res.TotalClients)
	assert.EqualValues(t, 1, res.TotalSellers)
	assert.True(t, decimal.NewFromFloat(500000).Equal(res.TotalSales),
		"la suma de ventas debe ser 349900 + 150100 = 500000, fue %s", res.TotalSales)
}

func TestReportRepo_OrdersWithNames(t *testing.T) {
	db := openTestDB(t)
	client, seller, _, order := seedOrderGraph(t, db)

	rows, err := sqlite.NewReportRepository(db).OrdersWithNames()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, order.ID, rows[0].ID)
	assert.Equal(t, client.Name, rows[0].ClientName)
	assert.Equal(t, seller.Name, rows[0].SellerName)
	assert.Equal(t, "2026-08-30", rows[0].Date)
}

func TestAuditLogRepo_Append(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewAuditLogRepository(db)

	user := &entity.User{Username: "jgomez", Email: "jgomez@ferreteria.co", PasswordHash: "h", Role: entity.RoleAdmin}
	require.NoError(t, sqlite.NewUserRepository(db).Create(user))

	userID := user.ID
	targetID := int64(9)
	entry := &entity.AuditLog{
		UserID:     &userID,
		Action:     "create",
		TargetType: "seller",
		TargetID:   &targetID,
	}
	require.NoError(t, repo.Append(entry))
	assert.Positive(t, entry.ID)

	// Sin usuario identificado también se acepta (user_id NULL)
	require.NoError(t, repo.Append(&entity.AuditLog{Action: "delete", TargetType: "product"}))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM audit_logs`))
	assert.Equal(t, 2, count)
}
