package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ncaldwell/flightmap-backend-go/internal/database"
	"github.com/ncaldwell/flightmap-backend-go/internal/models"
)

// RouteRepository handles database operations for the imported route dataset
type RouteRepository struct {
	db *sql.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS flight_routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		origin_city TEXT NOT NULL,
		dest_city TEXT NOT NULL,
		airport TEXT NOT NULL,
		passengers INTEGER NOT NULL,
		origin_lat REAL NOT NULL,
		origin_lon REAL NOT NULL,
		dest_lat REAL NOT NULL,
		dest_lon REAL NOT NULL
	)
`

// ImportRecords replaces the table contents with the given records inside a
// single transaction. Insert order follows slice order, so rowid preserves
// the file order the first-seen aggregation semantics depend on.
func (r *RouteRepository) ImportRecords(records []models.FlightRecord) error {
	if _, err := r.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create flight_routes table: %w", err)
	}

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM flight_routes"); err != nil {
			return fmt.Errorf("failed to clear flight_routes: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO flight_routes
			(year, origin_city, dest_city, airport, passengers,
			 origin_lat, origin_lon, dest_lat, dest_lon)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			_, err := stmt.Exec(rec.Year, rec.OriginCity, rec.DestCity,
				rec.Airport, rec.Passengers,
				rec.OriginLat, rec.OriginLon, rec.DestLat, rec.DestLon)
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		return nil
	})
}

// DistinctYears returns the sorted distinct years of the full dataset
func (r *RouteRepository) DistinctYears() ([]int, error) {
	rows, err := r.db.Query("SELECT DISTINCT year FROM flight_routes ORDER BY year")
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

// DistinctCities returns the sorted distinct origin cities of the full dataset
func (r *RouteRepository) DistinctCities() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT origin_city FROM flight_routes ORDER BY origin_city")
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// FindFiltered returns the records matching the filter in import order.
// An empty year or city selection places no restriction on that dimension.
func (r *RouteRepository) FindFiltered(filter models.RouteFilter) ([]models.FlightRecord, error) {
	query := `SELECT id, year, origin_city, dest_city, airport, passengers,
		origin_lat, origin_lon, dest_lat, dest_lon
		FROM flight_routes`

	var conditions []string
	var args []interface{}

	if len(filter.Years) > 0 {
		conditions = append(conditions, "year IN ("+placeholders(len(filter.Years))+")")
		for _, y := range filter.Years {
			args = append(args, y)
		}
	}
	if len(filter.Cities) > 0 {
		conditions = append(conditions, "origin_city IN ("+placeholders(len(filter.Cities))+")")
		for _, c := range filter.Cities {
			args = append(args, c)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query filtered records: %w", err)
	}
	defer rows.Close()

	var records []models.FlightRecord
	for rows.Next() {
		var rec models.FlightRecord
		err := rows.Scan(&rec.ID, &rec.Year, &rec.OriginCity, &rec.DestCity,
			&rec.Airport, &rec.Passengers,
			&rec.OriginLat, &rec.OriginLon, &rec.DestLat, &rec.DestLon)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// YearSpan returns the first and last year present in the dataset
func (r *RouteRepository) YearSpan() (int, int, error) {
	var first, last sql.NullInt64
	err := r.db.QueryRow("SELECT MIN(year), MAX(year) FROM flight_routes").Scan(&first, &last)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query year span: %w", err)
	}
	return int(first.Int64), int(last.Int64), nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
