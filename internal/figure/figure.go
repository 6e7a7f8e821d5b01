package figure

// Figure is a complete, self-contained map figure document ready for the
// charting layer: a trace list plus static layout. It holds no server state.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scattergeo trace: either the city marker layer or a single
// two-point route line.
type Trace struct {
	Type         string    `json:"type"`
	LocationMode string    `json:"locationmode,omitempty"`
	Lon          []float64 `json:"lon"`
	Lat          []float64 `json:"lat"`
	Mode         string    `json:"mode"`
	HoverInfo    string    `json:"hoverinfo,omitempty"`
	Text         []string  `json:"text,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	Opacity      float64   `json:"opacity,omitempty"`
}

// Marker styles the city marker layer. Sizes scale by area against SizeRef.
type Marker struct {
	Size     []int    `json:"size"`
	SizeMode string   `json:"sizemode"`
	SizeRef  float64  `json:"sizeref"`
	Color    []string `json:"color"`
}

// Line styles a single route line.
type Line struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Layout carries the static map styling.
type Layout struct {
	Title        Title  `json:"title"`
	ShowLegend   bool   `json:"showlegend"`
	Geo          Geo    `json:"geo"`
	PaperBGColor string `json:"paper_bgcolor"`
	Font         Font   `json:"font"`
	Height       int    `json:"height"`
}

// Title is the figure title.
type Title struct {
	Text string `json:"text"`
}

// Font sets the base figure font.
type Font struct {
	Color string `json:"color"`
}

// Geo configures the geographic subplot.
type Geo struct {
	Scope        string     `json:"scope"`
	Projection   Projection `json:"projection"`
	ShowLand     bool       `json:"showland"`
	LandColor    string     `json:"landcolor"`
	CountryColor string     `json:"countrycolor"`
	LakeColor    string     `json:"lakecolor"`
	BGColor      string     `json:"bgcolor"`
	LonAxis      Axis       `json:"lonaxis"`
	LatAxis      Axis       `json:"lataxis"`
}

// Projection selects the map projection.
type Projection struct {
	Type string `json:"type"`
}

// Axis bounds one geographic axis.
type Axis struct {
	Range [2]float64 `json:"range"`
}
