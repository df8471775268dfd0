package repository

import "github.com/jhoicas/ferreteria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	// FindByUsernameOrEmail devuelve el primer usuario cuyo username o email coincida
	// (verificación de duplicados en el registro).
	FindByUsernameOrEmail(username, email string) (*entity.User, error)
}
