package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)
var _ repository.OrderDetailRepository = (*OrderDetailRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre SQLite.
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste una nueva orden y asigna su ID.
// Las FKs validan que client_id y seller_id existan.
func (r *OrderRepo) Create(order *entity.Order) error {
	res, err := r.db.Exec(
		`INSERT INTO orders (client_id, seller_id, date, total) VALUES (?, ?, ?, ?)`,
		order.ClientID, order.SellerID, order.Date, order.Total,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert order id: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Get(&o, `SELECT id, client_id, seller_id, date, total FROM orders WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List devuelve todas las órdenes en orden de inserción.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	var list []*entity.Order
	if err := r.db.Select(&list, `SELECT id, client_id, seller_id, date, total FROM orders ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

// Update actualiza una orden existente.
func (r *OrderRepo) Update(order *entity.Order) error {
	_, err := r.db.Exec(
		`UPDATE orders SET client_id = ?, seller_id = ?, date = ?, total = ? WHERE id = ?`,
		order.ClientID, order.SellerID, order.Date, order.Total, order.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID. Falla con ErrForeignKey si conserva detalles.
func (r *OrderRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// OrderDetailRepo implementación del puerto OrderDetailRepository sobre SQLite.
type OrderDetailRepo struct {
	db *sqlx.DB
}

// NewOrderDetailRepository construye el adaptador de persistencia para detalles de orden.
func NewOrderDetailRepository(db *sqlx.DB) *OrderDetailRepo {
	return &OrderDetailRepo{db: db}
}

// Create persiste una nueva línea de detalle y asigna su ID.
func (r *OrderDetailRepo) Create(detail *entity.OrderDetail) error {
	res, err := r.db.Exec(
		`INSERT INTO order_details (order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)`,
		detail.OrderID, detail.ProductID, detail.Quantity, detail.UnitPrice,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert order detail: %w", err)
	}
	detail.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert order detail id: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de detalle por ID. Devuelve nil si no existe.
func (r *OrderDetailRepo) GetByID(id int64) (*entity.OrderDetail, error) {
	var d entity.OrderDetail
	err := r.db.Get(&d, `SELECT id, order_id, product_id, quantity, unit_price FROM order_details WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order detail: %w", err)
	}
	return &d, nil
}

// ListByOrder devuelve las líneas de una orden en orden de inserción.
func (r *OrderDetailRepo) ListByOrder(orderID int64) ([]*entity.OrderDetail, error) {
	var list []*entity.OrderDetail
	err := r.db.Select(&list,
		`SELECT id, order_id, product_id, quantity, unit_price FROM order_details WHERE order_id = ? ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	return list, nil
}

// Update actualiza una línea de detalle existente.
func (r *OrderDetailRepo) Update(detail *entity.OrderDetail) error {
	_, err := r.db.Exec(
		`UPDATE order_details SET order_id = ?, product_id = ?, quantity = ?, unit_price = ? WHERE id = ?`,
		detail.OrderID, detail.ProductID, detail.Quantity, detail.UnitPrice, detail.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update order detail: %w", err)
	}
	return nil
}

// Delete elimina una línea de detalle por ID.
func (r *OrderDetailRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM order_details WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete order detail: %w", err)
	}
	return nil
}
