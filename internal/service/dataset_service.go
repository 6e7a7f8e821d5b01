package service

import (
	"fmt"

	"github.com/ncaldwell/flightmap-backend-go/internal/dataset"
	"github.com/ncaldwell/flightmap-backend-go/internal/models"
	"github.com/ncaldwell/flightmap-backend-go/internal/repository"
	"github.com/ncaldwell/flightmap-backend-go/internal/stats"
)

// DatasetService handles business logic for the imported dataset
type DatasetService struct {
	repo    *repository.RouteRepository
	csvPath string
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.RouteRepository, csvPath string) *DatasetService {
	return &DatasetService{repo: repo, csvPath: csvPath}
}

// Import loads the route CSV and replaces the dataset store contents.
// Returns the number of imported records.
func (s *DatasetService) Import() (int, error) {
	records, err := dataset.Load(s.csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load route dataset: %w", err)
	}
	if err := s.repo.ImportRecords(records); err != nil {
		return 0, fmt.Errorf("failed to import route dataset: %w", err)
	}
	return len(records), nil
}

// FilterOptions returns the distinct sorted years and origin cities of the
// full dataset. Options always come from the full dataset, never from a
// filtered view.
func (s *DatasetService) FilterOptions() (*models.FilterOptions, error) {
	years, err := s.repo.DistinctYears()
	if err != nil {
		return nil, err
	}
	cities, err := s.repo.DistinctCities()
	if err != nil {
		return nil, err
	}

	opts := &models.FilterOptions{Years: years, Cities: cities}
	if opts.Years == nil {
		opts.Years = []int{}
	}
	if opts.Cities == nil {
		opts.Cities = []string{}
	}
	return opts, nil
}

// Summary returns whole-dataset statistics.
func (s *DatasetService) Summary() (*models.DatasetSummary, error) {
	records, err := s.repo.FindFiltered(models.RouteFilter{})
	if err != nil {
		return nil, err
	}
	first, last, err := s.repo.YearSpan()
	if err != nil {
		return nil, err
	}

	passengers := make([]int64, len(records))
	values := make([]float64, len(records))
	for i, rec := range records {
		passengers[i] = rec.Passengers
		values[i] = float64(rec.Passengers)
	}

	return &models.DatasetSummary{
		RecordCount:     int64(len(records)),
		FirstYear:       first,
		LastYear:        last,
		TotalPassengers: stats.SumInt64(passengers),
		MeanPassengers:  stats.Mean(values),
	}, nil
}
