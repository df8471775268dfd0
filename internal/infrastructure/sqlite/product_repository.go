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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db *sqlx.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	res, err := r.db.Exec(
		`INSERT INTO products (name, description, price, stock, category) VALUES (?, ?, ?, ?, ?)`,
		product.Name, product.Description, product.Price, product.Stock, product.Category,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert product id: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Get(&p, `SELECT id, name, description, price, stock, category FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	if err := r.db.Select(&list, `SELECT id, name, description, price, stock, category FROM products ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	_, err := r.db.Exec(
		`UPDATE products SET name = ?, description = ?, price = ?, stock = ?, category = ? WHERE id = ?`,
		product.Name, product.Description, product.Price, product.Stock, product.Category, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Falla con ErrForeignKey si aparece en detalles de órdenes.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
