package models

// InteractionFilter represents filter parameters for querying interaction events
type InteractionFilter struct {
	Algorithm      string `form:"algorithm"`      // prism, pet
	Classification string `form:"classification"` // in, out
	ZoneID         string `form:"zoneId"`
	Page           int    `form:"page"`
	PageSize       int    `form:"pageSize"`
}

// GridFilter represents filter parameters for querying grid cells
type GridFilter struct {
	Classification string  `form:"classification"` // in, out
	MinX           float64 `form:"minX"`
	MinY           float64 `form:"minY"`
	MaxX           float64 `form:"maxX"`
	MaxY           float64 `form:"maxY"`
	MinDensity     int     `form:"minDensity"`
}
