package dto

import "github.com/shopspring/decimal"

// StatsResponse totales agregados para el dashboard.
type StatsResponse struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProducts int64           `json:"total_products"`
	TotalClients  int64           `json:"total_clients"`
	TotalSellers  int64           `json:"total_sellers"`
}
