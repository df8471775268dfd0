package repository

import "github.com/jhoicas/ferreteria-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller (DIP).
type SellerRepository interface {
	Create(seller *entity.Seller) error // asigna seller.ID
	GetByID(id int64) (*entity.Seller, error)
	List() ([]*entity.Seller, error)
	Update(seller *entity.Seller) error
	Delete(id int64) error
}
