package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ncaldwell/flightmap-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func fixtureRecords() []models.FlightRecord {
	return []models.FlightRecord{
		{Year: 2021, OriginCity: "Boston", DestCity: "Miami", Airport: "BOS", Passengers: 70,
			OriginLat: 42.4, OriginLon: -71.0, DestLat: 25.8, DestLon: -80.2},
		{Year: 2020, OriginCity: "Austin", DestCity: "Dallas", Airport: "AUS", Passengers: 100,
			OriginLat: 30.0, OriginLon: -97.0, DestLat: 32.0, DestLon: -96.0},
		{Year: 2020, OriginCity: "Austin", DestCity: "Houston", Airport: "AUS", Passengers: 50,
			OriginLat: 30.0, OriginLon: -97.0, DestLat: 29.7, DestLon: -95.3},
	}
}

func seededRepo(t *testing.T) *RouteRepository {
	t.Helper()
	repo := NewRouteRepository(newTestDB(t))
	require.NoError(t, repo.ImportRecords(fixtureRecords()))
	return repo
}

func TestImportRecordsPreservesOrder(t *testing.T) {
	repo := seededRepo(t)

	records, err := repo.FindFiltered(models.RouteFilter{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Import order, not year order.
	assert.Equal(t, "Boston", records[0].OriginCity)
	assert.Equal(t, "Austin", records[1].OriginCity)
	assert.Equal(t, "Dallas", records[1].DestCity)
	assert.Less(t, records[0].ID, records[1].ID)
}

func TestImportRecordsReplaces(t *testing.T) {
	repo := seededRepo(t)

	require.NoError(t, repo.ImportRecords(fixtureRecords()))

	records, err := repo.FindFiltered(models.RouteFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 3, "reimport must not duplicate rows")
}

func TestDistinctValuesSorted(t *testing.T) {
	repo := seededRepo(t)

	years, err := repo.DistinctYears()
	require.NoError(t, err)
	assert.Equal(t, []int{2020, 2021}, years)

	cities, err := repo.DistinctCities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Austin", "Boston"}, cities)
}

func TestFindFiltered(t *testing.T) {
	repo := seededRepo(t)

	t.Run("by year", func(t *testing.T) {
		records, err := repo.FindFiltered(models.RouteFilter{Years: []int{2020}})
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, rec := range records {
			assert.Equal(t, 2020, rec.Year)
		}
	})

	t.Run("by city", func(t *testing.T) {
		records, err := repo.FindFiltered(models.RouteFilter{Cities: []string{"Boston"}})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Boston", records[0].OriginCity)
	})

	t.Run("year and city conjunction", func(t *testing.T) {
		records, err := repo.FindFiltered(models.RouteFilter{
			Years:  []int{2020},
			Cities: []string{"Boston"},
		})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		records, err := repo.FindFiltered(models.RouteFilter{Years: []int{1999}})
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestEmptySelectionEqualsFullSelection(t *testing.T) {
	repo := seededRepo(t)

	years, err := repo.DistinctYears()
	require.NoError(t, err)
	cities, err := repo.DistinctCities()
	require.NoError(t, err)

	unrestricted, err := repo.FindFiltered(models.RouteFilter{})
	require.NoError(t, err)
	explicit, err := repo.FindFiltered(models.RouteFilter{Years: years, Cities: cities})
	require.NoError(t, err)

	assert.Equal(t, unrestricted, explicit)
}

func TestYearSpan(t *testing.T) {
	repo := seededRepo(t)

	first, last, err := repo.YearSpan()
	require.NoError(t, err)
	assert.Equal(t, 2020, first)
	assert.Equal(t, 2021, last)
}
