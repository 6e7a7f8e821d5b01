package aggregate

import (
	"fmt"

	"github.com/ncaldwell/flightmap-backend-go/internal/models"
	"github.com/ncaldwell/flightmap-backend-go/internal/spatial"
	"github.com/ncaldwell/flightmap-backend-go/internal/stats"
)

// Result holds the outcome of one recompute over a filtered record set.
// Nothing here survives the request; every filter change recomputes from the
// imported records.
type Result struct {
	// Cities in first-seen order, one entry per distinct origin city.
	Cities []models.CitySummary
	// RouteCounts in first-seen order, one entry per unordered city pair.
	RouteCounts []models.RouteCount
	// Records is the filtered record set the result was computed from,
	// in import order. The figure layer draws one line per record.
	Records []models.FlightRecord
	// ColorByCity maps each aggregated city to its assigned color.
	ColorByCity map[string]string
	// MaxRouteFlights is the largest per-route flight count, used for
	// marker size scaling.
	MaxRouteFlights int
}

// Compute aggregates a filtered record set: per-route flight counts keyed by
// the unordered city pair, per-origin-city summaries, and a deterministic
// color per city. Record order must be import order; airport and destination
// coordinates keep the first-seen value for each city.
func Compute(records []models.FlightRecord) *Result {
	res := &Result{
		Records:     records,
		ColorByCity: make(map[string]string),
	}

	routeIndex := make(map[models.RouteKey]int)
	for _, rec := range records {
		key := models.NewRouteKey(rec.OriginCity, rec.DestCity)
		idx, ok := routeIndex[key]
		if !ok {
			res.RouteCounts = append(res.RouteCounts, models.RouteCount{
				CityA: key.CityA,
				CityB: key.CityB,
				DistanceKm: spatial.RouteDistanceKm(
					rec.OriginLat, rec.OriginLon, rec.DestLat, rec.DestLon),
			})
			idx = len(res.RouteCounts) - 1
			routeIndex[key] = idx
		}
		res.RouteCounts[idx].FlightCount++
	}

	cityIndex := make(map[string]int)
	for _, rec := range records {
		idx, ok := cityIndex[rec.OriginCity]
		if !ok {
			res.Cities = append(res.Cities, models.CitySummary{
				City:    rec.OriginCity,
				Lat:     rec.OriginLat,
				Lon:     rec.OriginLon,
				Airport: rec.Airport,
				DestLat: rec.DestLat,
				DestLon: rec.DestLon,
			})
			idx = len(res.Cities) - 1
			cityIndex[rec.OriginCity] = idx
		}
		res.Cities[idx].Passengers += rec.Passengers
		res.Cities[idx].FlightCount++
	}

	for i := range res.Cities {
		color := ColorForIndex(i)
		res.Cities[i].Color = color
		res.ColorByCity[res.Cities[i].City] = color
		res.Cities[i].HoverText = hoverText(res.Cities[i])
	}

	counts := make([]int, len(res.RouteCounts))
	for i, rc := range res.RouteCounts {
		counts[i] = rc.FlightCount
	}
	res.MaxRouteFlights = stats.MaxInt(counts)

	return res
}

func hoverText(c models.CitySummary) string {
	return fmt.Sprintf("City: %s<br>Total Flights: %d<br>Passengers: %d<br>Airport: %s",
		c.City, c.FlightCount, c.Passengers, c.Airport)
}
