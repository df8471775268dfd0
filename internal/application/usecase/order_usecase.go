package usecase

import (
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain"
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para órdenes y sus líneas de detalle.
// La existencia de client_id/seller_id/product_id la valida la capa de
// almacenamiento vía FKs, no se pre-valida aquí.
type OrderUseCase struct {
	orders  repository.OrderRepository
	details repository.OrderDetailRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, details repository.OrderDetailRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, details: details}
}

// Create crea una orden. Todos los campos son requeridos.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == 0 || in.SellerID == 0 || in.Date == "" || in.Total.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.Order{
		ClientID: in.ClientID,
		SellerID: in.SellerID,
		Date:     in.Date,
		Total:    in.Total,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todas las órdenes.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Update aplica un patch parcial: los campos ausentes conservan su valor.
func (uc *OrderUseCase) Update(id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientID != nil {
		order.ClientID = *in.ClientID
	}
	if in.SellerID != nil {
		order.SellerID = *in.SellerID
	}
	if in.Date != nil {
		order.Date = *in.Date
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(id int64) error {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orders.Delete(id)
}

// AddProduct añade una línea de detalle a una orden existente.
// No comprueba orden ni producto por adelantado: las FKs lo resuelven.
func (uc *OrderUseCase) AddProduct(orderID int64, in dto.AddProductRequest) (*dto.OrderDetailResponse, error) {
	if in.ProductID == 0 || in.Quantity == 0 || in.UnitPrice.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	detail := &entity.OrderDetail{
		OrderID:   orderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
	if err := uc.details.Create(detail); err != nil {
		return nil, err
	}
	return toOrderDetailResponse(detail), nil
}

// DetailsForOrder devuelve las líneas de una orden.
func (uc *OrderUseCase) DetailsForOrder(orderID int64) ([]dto.OrderDetailResponse, error) {
	list, err := uc.details.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderDetailResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toOrderDetailResponse(d))
	}
	return items, nil
}

// UpdateDetail aplica un patch parcial a una línea de detalle.
func (uc *OrderUseCase) UpdateDetail(id int64, in dto.UpdateOrderDetailRequest) (*dto.OrderDetailResponse, error) {
	detail, err := uc.details.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		detail.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		detail.UnitPrice = *in.UnitPrice
	}
	if err := uc.details.Update(detail); err != nil {
		return nil, err
	}
	return toOrderDetailResponse(detail), nil
}

// DeleteDetail elimina una línea de detalle por ID.
func (uc *OrderUseCase) DeleteDetail(id int64) error {
	detail, err := uc.details.GetByID(id)
	if err != nil {
		return err
	}
	if detail == nil {
		return domain.ErrNotFound
	}
	return uc.details.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:       o.ID,
		ClientID: o.ClientID,
		SellerID: o.SellerID,
		Date:     o.Date,
		Total:    o.Total,
	}
}

func toOrderDetailResponse(d *entity.OrderDetail) *dto.OrderDetailResponse {
	return &dto.OrderDetailResponse{
		ID:        d.ID,
		OrderID:   d.OrderID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
	}
}
