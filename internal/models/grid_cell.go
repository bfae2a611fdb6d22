package models

import "github.com/golang/geo/r2"

// GridCell is one cell of the regular density grid over the focus area.
// Density is the number of interaction events whose location falls inside
// the cell; ZoneID/Classification are the zone join of the cell centroid.
type GridCell struct {
	Row            int            `json:"row" db:"row"`
	Col            int            `json:"col" db:"col"`
	MinX           float64        `json:"min_x" db:"min_x"`
	MinY           float64        `json:"min_y" db:"min_y"`
	MaxX           float64        `json:"max_x" db:"max_x"`
	MaxY           float64        `json:"max_y" db:"max_y"`
	Centroid       r2.Point       `json:"centroid"`
	Density        int            `json:"density" db:"density"`
	ZoneID         string         `json:"zone_id,omitempty" db:"zone_id"`
	Classification Classification `json:"classification" db:"classification"`
}
