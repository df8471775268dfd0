package repository

import "github.com/shopspring/decimal"

// StatsResult totales agregados del almacén (lectura pura).
type StatsResult struct {
	TotalOrders   int64           `db:"total_orders"`
	TotalSales    decimal.Decimal `db:"total_sales"` // suma de Order.Total; 0 sin órdenes
	TotalProducts int64           `db:"total_products"`
	TotalClients  int64           `db:"total_clients"`
	TotalSellers  int64           `db:"total_sellers"`
}

// StatsRepository consultas agregadas de solo lectura.
type StatsRepository interface {
	Totals() (*StatsResult, error)
}
