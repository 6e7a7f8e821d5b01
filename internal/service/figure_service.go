package service

import (
	"github.com/ncaldwell/flightmap-backend-go/internal/aggregate"
	"github.com/ncaldwell/flightmap-backend-go/internal/figure"
	"github.com/ncaldwell/flightmap-backend-go/internal/models"
	"github.com/ncaldwell/flightmap-backend-go/internal/repository"
)

// FigureService handles business logic for figure recomputation
type FigureService struct {
	repo *repository.RouteRepository
}

// NewFigureService creates a new figure service
func NewFigureService(repo *repository.RouteRepository) *FigureService {
	return &FigureService{repo: repo}
}

// BuildFigure recomputes the aggregation for the given filter selection and
// builds the map figure from scratch. A selection matching no rows yields a
// figure with no markers and no lines.
func (s *FigureService) BuildFigure(filter models.RouteFilter) (*figure.Figure, error) {
	records, err := s.repo.FindFiltered(filter)
	if err != nil {
		return nil, err
	}
	return figure.Build(aggregate.Compute(records)), nil
}

// RouteCounts returns the per-corridor flight counts and distances for the
// given filter selection.
func (s *FigureService) RouteCounts(filter models.RouteFilter) ([]models.RouteCount, error) {
	records, err := s.repo.FindFiltered(filter)
	if err != nil {
		return nil, err
	}
	res := aggregate.Compute(records)
	if res.RouteCounts == nil {
		return []models.RouteCount{}, nil
	}
	return res.RouteCounts, nil
}

// CitySummaries returns the per-origin-city rollup for the given filter
// selection.
func (s *FigureService) CitySummaries(filter models.RouteFilter) ([]models.CitySummary, error) {
	records, err := s.repo.FindFiltered(filter)
	if err != nil {
		return nil, err
	}
	res := aggregate.Compute(records)
	if res.Cities == nil {
		return []models.CitySummary{}, nil
	}
	return res.Cities, nil
}
