package figure

import (
	"github.com/ncaldwell/flightmap-backend-go/internal/aggregate"
)

const locationModeUSA = "USA-states"

// Build constructs the map figure for one aggregation result: a marker trace
// with one point per aggregated city, then one line trace per individual
// filtered record. Overlapping routes deliberately overdraw each other at
// partial opacity. An empty result yields an empty marker trace and no lines.
func Build(res *aggregate.Result) *Figure {
	fig := &Figure{
		Data:   make([]Trace, 0, len(res.Records)+1),
		Layout: defaultLayout(),
	}

	fig.Data = append(fig.Data, markerTrace(res))
	for _, rec := range res.Records {
		fig.Data = append(fig.Data, Trace{
			Type:         "scattergeo",
			LocationMode: locationModeUSA,
			Lon:          []float64{rec.OriginLon, rec.DestLon},
			Lat:          []float64{rec.OriginLat, rec.DestLat},
			Mode:         "lines",
			HoverInfo:    "none",
			Opacity:      0.5,
			Line: &Line{
				Width: 1,
				Color: res.ColorByCity[rec.OriginCity],
			},
		})
	}

	return fig
}

func markerTrace(res *aggregate.Result) Trace {
	t := Trace{
		Type:         "scattergeo",
		LocationMode: locationModeUSA,
		Lon:          make([]float64, 0, len(res.Cities)),
		Lat:          make([]float64, 0, len(res.Cities)),
		Mode:         "markers",
		HoverInfo:    "text",
		Text:         make([]string, 0, len(res.Cities)),
		Marker: &Marker{
			Size:     make([]int, 0, len(res.Cities)),
			SizeMode: "area",
			SizeRef:  SizeRef(res.MaxRouteFlights),
			Color:    make([]string, 0, len(res.Cities)),
		},
	}

	for _, city := range res.Cities {
		t.Lon = append(t.Lon, city.Lon)
		t.Lat = append(t.Lat, city.Lat)
		t.Text = append(t.Text, city.HoverText)
		t.Marker.Size = append(t.Marker.Size, city.FlightCount)
		t.Marker.Color = append(t.Marker.Color, city.Color)
	}

	return t
}

// SizeRef implements the area-proportional scaling 2*max/15^2 against the
// largest per-route flight count.
func SizeRef(maxRouteFlights int) float64 {
	if maxRouteFlights <= 0 {
		return 1
	}
	return 2 * float64(maxRouteFlights) / (15 * 15)
}

func defaultLayout() Layout {
	return Layout{
		Title:        Title{Text: "American Airline flight paths<br>(Hover for airport names)"},
		ShowLegend:   false,
		PaperBGColor: "rgb(150, 150, 150)",
		Font:         Font{Color: "white"},
		Height:       700,
		Geo: Geo{
			Scope:        "north america",
			Projection:   Projection{Type: "azimuthal equal area"},
			ShowLand:     true,
			LandColor:    "rgb(30, 30, 30)",
			CountryColor: "rgb(60, 60, 60)",
			LakeColor:    "rgb(40, 40, 40)",
			BGColor:      "rgb(20, 20, 20)",
			LonAxis:      Axis{Range: [2]float64{-130, -60}},
			LatAxis:      Axis{Range: [2]float64{20, 55}},
		},
	}
}
