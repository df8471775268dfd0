package entity

import "github.com/shopspring/decimal"

// Order representa la cabecera de una orden de venta.
// ClientID y SellerID referencian filas existentes (FK con RESTRICT).
type Order struct {
	ID       int64           `db:"id"`
	ClientID int64           `db:"client_id"`
	SellerID int64           `db:"seller_id"`
	Date     string          `db:"date"` // YYYY-MM-DD
	Total    decimal.Decimal `db:"total"`
}
