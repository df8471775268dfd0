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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre SQLite.
type ClientRepo struct {
	db *sqlx.DB
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db *sqlx.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *ClientRepo) Create(client *entity.Client) error {
	res, err := r.db.Exec(
		`INSERT INTO clients (name, phone, email, address) VALUES (?, ?, ?, ?)`,
		client.Name, client.Phone, client.Email, client.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert client: %w", err)
	}
	client.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert client id: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	var c entity.Client
	err := r.db.Get(&c, `SELECT id, name, phone, email, address FROM clients WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	var list []*entity.Client
	if err := r.db.Select(&list, `SELECT id, name, phone, email, address FROM clients ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(client *entity.Client) error {
	_, err := r.db.Exec(
		`UPDATE clients SET name = ?, phone = ?, email = ?, address = ? WHERE id = ?`,
		client.Name, client.Phone, client.Email, client.Address, client.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Falla con ErrForeignKey si tiene órdenes asociadas.
func (r *ClientRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
