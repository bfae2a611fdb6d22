package models

import "github.com/golang/geo/r2"

// Algorithm identifies which detector produced an interaction event.
type Algorithm string

// Detector algorithms.
const (
	AlgorithmPrism Algorithm = "prism"
	AlgorithmPET   Algorithm = "pet"
)

// Classification tells whether an interaction event falls inside a predicted
// interaction zone.
type Classification string

// Zone classifications.
const (
	ClassificationIn  Classification = "in"
	ClassificationOut Classification = "out"
)

// InteractionEvent is one detected bike-car interaction. PET is set only for
// events produced by the PET detector. ZoneID and Classification are attached
// by the zone join; the event is immutable afterward.
type InteractionEvent struct {
	ID             string         `json:"id" db:"id"`
	Location       r2.Point       `json:"location"`
	Algorithm      Algorithm      `json:"algorithm" db:"algorithm"`
	PET            *float64       `json:"pet,omitempty" db:"pet"` // seconds
	ZoneID         string         `json:"zone_id,omitempty" db:"zone_id"`
	Classification Classification `json:"classification,omitempty" db:"classification"`
}
