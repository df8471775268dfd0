package entity

import "github.com/shopspring/decimal"

// OrderDetail representa una línea de detalle de una orden.
type OrderDetail struct {
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	ProductID int64           `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}
