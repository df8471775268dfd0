package repository

import "github.com/jhoicas/ferreteria-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error // asigna order.ID
	GetByID(id int64) (*entity.Order, error)
	List() ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id int64) error
}

// OrderDetailRepository define el puerto de persistencia para OrderDetail (DIP).
type OrderDetailRepository interface {
	Create(detail *entity.OrderDetail) error // asigna detail.ID
	GetByID(id int64) (*entity.OrderDetail, error)
	ListByOrder(orderID int64) ([]*entity.OrderDetail, error)
	Update(detail *entity.OrderDetail) error
	Delete(id int64) error
}
