package usecase

import (
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

// StatsUseCase estadísticas agregadas del almacén. Lectura pura, sin efectos.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Stats devuelve los totales: conteos por entidad y suma de ventas.
func (uc *StatsUseCase) Stats() (*dto.StatsResponse, error) {
	res, err := uc.repo.Totals()
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalOrders:   res.TotalOrders,
		TotalSales:    res.TotalSales,
		TotalProducts: res.TotalProducts,
		TotalClients:  res.TotalClients,
		TotalSellers:  res.TotalSellers,
	}, nil
}
