package models

// RouteFilter represents filter parameters for selecting flight records.
// An empty slice means no restriction for that dimension, equivalent to
// selecting every distinct value.
type RouteFilter struct {
	Years  []int    `form:"year"`
	Cities []string `form:"city"`
}
