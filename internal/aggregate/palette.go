package aggregate

// paletteColors is the fixed qualitative palette cities cycle through. It
// mirrors the default categorical colors of the charting layer so server-side
// assignments match what the page would pick on its own.
var paletteColors = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// ColorForIndex returns the palette color for the i-th first-seen city,
// cycling when the palette runs out.
func ColorForIndex(i int) string {
	return paletteColors[i%len(paletteColors)]
}

// PaletteSize returns the number of colors before the cycle repeats.
func PaletteSize() int {
	return len(paletteColors)
}
