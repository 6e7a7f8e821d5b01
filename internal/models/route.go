package models

// FlightRecord is one row of the source route dataset. Records are immutable
// once imported; the full record set is the single source of truth for the
// lifetime of the process.
type FlightRecord struct {
	ID         int64   `json:"id" db:"id"`
	Year       int     `json:"year" db:"year"`
	OriginCity string  `json:"origin_city" db:"origin_city"`
	DestCity   string  `json:"dest_city" db:"dest_city"`
	Airport    string  `json:"airport" db:"airport"`
	Passengers int64   `json:"passengers" db:"passengers"`
	OriginLat  float64 `json:"origin_lat" db:"origin_lat"`
	OriginLon  float64 `json:"origin_lon" db:"origin_lon"`
	DestLat    float64 `json:"dest_lat" db:"dest_lat"`
	DestLon    float64 `json:"dest_lon" db:"dest_lon"`
}

// RouteKey identifies a city-to-city corridor irrespective of direction.
type RouteKey struct {
	CityA string
	CityB string
}

// NewRouteKey sorts the pair so both directions map to the same corridor.
func NewRouteKey(city1, city2 string) RouteKey {
	if city2 < city1 {
		city1, city2 = city2, city1
	}
	return RouteKey{CityA: city1, CityB: city2}
}

// RouteCount is the per-corridor rollup used for marker sizing and the
// routes endpoint.
type RouteCount struct {
	CityA       string  `json:"city_a"`
	CityB       string  `json:"city_b"`
	FlightCount int     `json:"flight_count"`
	DistanceKm  float64 `json:"distance_km"`
}

// CitySummary is the per-origin-city rollup recomputed on every filter
// change. Airport and destination coordinates keep the first-seen value when
// a city serves multiple destinations.
type CitySummary struct {
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Passengers  int64   `json:"passengers"`
	Airport     string  `json:"airport"`
	DestLat     float64 `json:"dest_lat"`
	DestLon     float64 `json:"dest_lon"`
	FlightCount int     `json:"flight_count"`
	HoverText   string  `json:"hover_text"`
	Color       string  `json:"color"`
}

// FilterOptions holds the distinct values the dropdown controls offer,
// computed once from the full dataset.
type FilterOptions struct {
	Years  []int    `json:"years"`
	Cities []string `json:"cities"`
}

// DatasetSummary describes the whole imported dataset.
type DatasetSummary struct {
	RecordCount     int64   `json:"record_count"`
	FirstYear       int     `json:"first_year"`
	LastYear        int     `json:"last_year"`
	TotalPassengers int64   `json:"total_passengers"`
	MeanPassengers  float64 `json:"mean_passengers"`
}
