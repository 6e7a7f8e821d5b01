package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ncaldwell/flightmap-backend-go/internal/models"
)

// Column names the route CSV must provide. Geocoded columns hold a
// "<lat>, <lon>" string per endpoint.
var requiredColumns = []string{
	"Year",
	"city1",
	"city2",
	"airport_1",
	"passengers",
	"Geocoded_City1",
	"Geocoded_City2",
}

// Load reads the route CSV into memory, splitting the geocoded endpoint
// columns into numeric coordinates. Any malformed row fails the whole load;
// the caller treats that as fatal at startup.
func Load(path string) ([]models.FlightRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open route CSV: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses route records from an already-open CSV stream.
func Read(r io.Reader) ([]models.FlightRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndices := make(map[string]int, len(header))
	for i, col := range header {
		colIndices[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndices[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var records []models.FlightRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line++

		rec, err := parseRecord(row, colIndices)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(row []string, colIndices map[string]int) (models.FlightRecord, error) {
	var rec models.FlightRecord

	field := func(name string) string {
		return strings.TrimSpace(row[colIndices[name]])
	}

	year, err := strconv.Atoi(field("Year"))
	if err != nil {
		return rec, fmt.Errorf("invalid Year %q: %w", field("Year"), err)
	}

	passengers, err := strconv.ParseInt(field("passengers"), 10, 64)
	if err != nil {
		return rec, fmt.Errorf("invalid passengers %q: %w", field("passengers"), err)
	}

	originLat, originLon, err := ParseGeocoded(field("Geocoded_City1"))
	if err != nil {
		return rec, fmt.Errorf("invalid Geocoded_City1: %w", err)
	}

	destLat, destLon, err := ParseGeocoded(field("Geocoded_City2"))
	if err != nil {
		return rec, fmt.Errorf("invalid Geocoded_City2: %w", err)
	}

	rec = models.FlightRecord{
		Year:       year,
		OriginCity: field("city1"),
		DestCity:   field("city2"),
		Airport:    field("airport_1"),
		Passengers: passengers,
		OriginLat:  originLat,
		OriginLon:  originLon,
		DestLat:    destLat,
		DestLon:    destLon,
	}
	return rec, nil
}

// ParseGeocoded splits a "<lat>, <lon>" string into its numeric parts.
// The string must split on the comma into exactly two float tokens.
func ParseGeocoded(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat, lon\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return lat, lon, nil
}
