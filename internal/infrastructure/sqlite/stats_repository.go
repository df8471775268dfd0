package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)
var _ repository.ReportRepository = (*ReportRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el dashboard.
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Totals devuelve conteos por tabla y la suma de Order.Total.
// COALESCE garantiza 0 cuando no hay órdenes.
func (r *StatsRepo) Totals() (*repository.StatsResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM orders)                 AS total_orders,
	    (SELECT COALESCE(SUM(total), 0) FROM orders)  AS total_sales,
	    (SELECT COUNT(*) FROM products)               AS total_products,
	    (SELECT COUNT(*) FROM clients)                AS total_clients,
	    (SELECT COUNT(*) FROM sellers)                AS total_sellers`
	var res repository.StatsResult
	if err := r.db.Get(&res, query); err != nil {
		return nil, fmt.Errorf("stats totals: %w", err)
	}
	return &res, nil
}

// ReportRepo lecturas de snapshot para los exportes.
type ReportRepo struct {
	db *sqlx.DB
}

// NewReportRepository construye el adaptador de lecturas para exportes.
func NewReportRepository(db *sqlx.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// OrdersWithNames devuelve todas las órdenes con nombres de cliente y vendedor resueltos.
func (r *ReportRepo) OrdersWithNames() ([]repository.OrderReportRow, error) {
	const query = `
	SELECT o.id AS id, c.name AS client_name, s.name AS seller_name, o.date AS date, o.total AS total
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	JOIN sellers s ON s.id = o.seller_id
	ORDER BY o.id`
	var rows []repository.OrderReportRow
	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("orders with names: %w", err)
	}
	return rows, nil
}
