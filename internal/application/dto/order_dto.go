package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest entrada para crear una orden. Todos los campos requeridos.
type CreateOrderRequest struct {
	ClientID int64           `json:"client_id"`
	SellerID int64           `json:"seller_id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Total    decimal.Decimal `json:"total"`
}

// UpdateOrderRequest patch parcial: solo los campos presentes sobrescriben.
type UpdateOrderRequest struct {
	ClientID *int64           `json:"client_id"`
	SellerID *int64           `json:"seller_id"`
	Date     *string          `json:"date"`
	Total    *decimal.Decimal `json:"total"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID       int64           `json:"id"`
	ClientID int64           `json:"client_id"`
	SellerID int64           `json:"seller_id"`
	Date     string          `json:"date"`
	Total    decimal.Decimal `json:"total"`
}

// AddProductRequest entrada para añadir una línea a una orden existente.
type AddProductRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateOrderDetailRequest patch parcial de una línea de detalle.
type UpdateOrderDetailRequest struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// OrderDetailResponse salida de una línea de detalle.
type OrderDetailResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
