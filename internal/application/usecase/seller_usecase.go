package usecase

import (
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

// SellerUseCase casos de uso CRUD para vendedores.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create crea un vendedor. Name, Zone y Email son requeridos.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	if in.Name == "" || in.Zone == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	seller := &entity.Seller{
		Name:  in.Name,
		Zone:  in.Zone,
		Phone: in.Phone,
		Email: in.Email,
	}
	if err := uc.repo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// List devuelve todos los vendedores.
func (uc *SellerUseCase) List() ([]dto.SellerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSellerResponse(s))
	}
	return items, nil
}

// Update aplica un patch parcial: los campos ausentes conservan su valor.
func (uc *SellerUseCase) Update(id int64, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		seller.Name = *in.Name
	}
	if in.Zone != nil {
		seller.Zone = *in.Zone
	}
	if in.Phone != nil {
		seller.Phone = *in.Phone
	}
	if in.Email != nil {
		seller.Email = *in.Email
	}
	if err := uc.repo.Update(seller); err != nil {
		return nil, err
	}
	return toSellerResponse(seller), nil
}

// Delete elimina un vendedor por ID.
func (uc *SellerUseCase) Delete(id int64) error {
	seller, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if seller == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	return &dto.SellerResponse{
		ID:    s.ID,
		Name:  s.Name,
		Zone:  s.Zone,
		Phone: s.Phone,
		Email: s.Email,
	}
}
