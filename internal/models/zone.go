package models

import "github.com/velotrace/zoneval/internal/geom"

// Zone is one predicted interaction zone polygon, produced by the upstream
// zone-detection project. Read-only input.
type Zone struct {
	ID      string       `json:"id"`
	Polygon geom.Polygon `json:"-"`
}

// FocusArea is the bounded intersection region the analysis is restricted to.
// Read-only input.
type FocusArea struct {
	Polygon geom.Polygon `json:"-"`
}
