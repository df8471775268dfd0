package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la ferretería.
// Stock se espera >= 0 pero no se impone a nivel de dominio.
type Product struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"` // opcional
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Category    string          `db:"category"` // opcional
}
