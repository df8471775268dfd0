package repository

import "github.com/shopspring/decimal"

// OrderReportRow fila de orden resuelta con nombres de cliente y vendedor (para exportes).
type OrderReportRow struct {
	ID         int64           `db:"id"`
	ClientName string          `db:"client_name"`
	SellerName string          `db:"seller_name"`
	Date       string          `db:"date"`
	Total      decimal.Decimal `db:"total"`
}

// ReportRepository lecturas de snapshot completo para los exportes XLSX/PDF.
type ReportRepository interface {
	OrdersWithNames() ([]OrderReportRow, error)
}
