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

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre SQLite.
type SellerRepo struct {
	db *sqlx.DB
}

// NewSellerRepository construye el adaptador de persistencia para vendedores.
func NewSellerRepository(db *sqlx.DB) *SellerRepo {
	return &SellerRepo{db: db}
}

// Create persiste un nuevo vendedor y asigna su ID.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	res, err := r.db.Exec(
		`INSERT INTO sellers (name, zone, phone, email) VALUES (?, ?, ?, ?)`,
		seller.Name, seller.Zone, seller.Phone, seller.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	seller.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert seller id: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID. Devuelve nil si no existe.
func (r *SellerRepo) GetByID(id int64) (*entity.Seller, error) {
	var s entity.Seller
	err := r.db.Get(&s, `SELECT id, name, zone, phone, email FROM sellers WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// List devuelve todos los vendedores en orden de inserción.
func (r *SellerRepo) List() ([]*entity.Seller, error) {
	var list []*entity.Seller
	if err := r.db.Select(&list, `SELECT id, name, zone, phone, email FROM sellers ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	return list, nil
}

// Update actualiza un vendedor existente.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	_, err := r.db.Exec(
		`UPDATE sellers SET name = ?, zone = ?, phone = ?, email = ? WHERE id = ?`,
		seller.Name, seller.Zone, seller.Phone, seller.Email, seller.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}

// Delete elimina un vendedor por ID. Falla con ErrForeignKey si tiene órdenes asociadas.
func (r *SellerRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM sellers WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete seller: %w", err)
	}
	return nil
}
