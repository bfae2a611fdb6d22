// Package ingest reads the GeoJSON input datasets. Geometries are expected
// to be pre-transformed into the shared projected CRS; every file carries a
// crs name that is checked against the configured one, and a mismatch fails
// the load outright.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/golang/geo/r2"

	"github.com/velotrace/zoneval/internal/geom"
	"github.com/velotrace/zoneval/internal/models"
)

type featureCollection struct {
	Type     string    `json:"type"`
	CRS      string    `json:"crs"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string          `json:"type"`
	Geometry   geometry        `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// loadCollection reads a feature collection and verifies its CRS against the
// expected one.
func loadCollection(path, crs string) (*featureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if fc.CRS != crs {
		return nil, fmt.Errorf("CRS mismatch in %s: dataset has %q, pipeline expects %q", path, fc.CRS, crs)
	}
	return &fc, nil
}

func (g geometry) point() (r2.Point, error) {
	if g.Type != "Point" {
		return r2.Point{}, fmt.Errorf("expected Point geometry, got %q", g.Type)
	}
	var coords []float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return r2.Point{}, fmt.Errorf("failed to parse point coordinates: %w", err)
	}
	if len(coords) < 2 {
		return r2.Point{}, fmt.Errorf("point has %d coordinates", len(coords))
	}
	return r2.Point{X: coords[0], Y: coords[1]}, nil
}

func (g geometry) lineString() (geom.LineString, error) {
	if g.Type != "LineString" {
		return nil, fmt.Errorf("expected LineString geometry, got %q", g.Type)
	}
	var coords [][]float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return nil, fmt.Errorf("failed to parse line coordinates: %w", err)
	}
	line := make(geom.LineString, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("line vertex has %d coordinates", len(c))
		}
		line = append(line, r2.Point{X: c[0], Y: c[1]})
	}
	return line, nil
}

func (g geometry) polygon() (geom.Polygon, error) {
	if g.Type != "Polygon" {
		return geom.Polygon{}, fmt.Errorf("expected Polygon geometry, got %q", g.Type)
	}
	var rings [][][]float64
	if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
		return geom.Polygon{}, fmt.Errorf("failed to parse polygon coordinates: %w", err)
	}
	if len(rings) == 0 {
		return geom.Polygon{}, fmt.Errorf("polygon has no rings")
	}
	// Only the outer ring is used; the zone polygons carry no holes.
	ring := make([]r2.Point, 0, len(rings[0]))
	for _, c := range rings[0] {
		if len(c) < 2 {
			return geom.Polygon{}, fmt.Errorf("polygon vertex has %d coordinates", len(c))
		}
		ring = append(ring, r2.Point{X: c[0], Y: c[1]})
	}
	return geom.Polygon{Ring: ring}, nil
}

// LoadPoints reads the raw trajectory point dataset.
func LoadPoints(path, crs string) ([]models.TrajectoryPoint, error) {
	fc, err := loadCollection(path, crs)
	if err != nil {
		return nil, err
	}

	type pointProps struct {
		TrackID     string `json:"track_id"`
		T           int64  `json:"t"`
		ObjectType  string `json:"object_type"`
		VehicleType string `json:"vehicle_type"`
	}

	points := make([]models.TrajectoryPoint, 0, len(fc.Features))
	for i, f := range fc.Features {
		loc, err := f.Geometry.point()
		if err != nil {
			return nil, fmt.Errorf("feature %d in %s: %w", i, path, err)
		}
		var props pointProps
		if err := json.Unmarshal(f.Properties, &props); err != nil {
			return nil, fmt.Errorf("feature %d in %s: %w", i, path, err)
		}
		points = append(points, models.TrajectoryPoint{
			TrackID:     props.TrackID,
			Time:        props.T,
			Location:    loc,
			ObjectType:  props.ObjectType,
			VehicleType: props.VehicleType,
		})
	}
	return points, nil
}

// LoadLines reads the line dataset and returns the polyline per track id.
func LoadLines(path, crs string) (map[string]geom.LineString, error) {
	fc, err := loadCollection(path, crs)
	if err != nil {
		return nil, err
	}

	type lineProps struct {
		ID string `json:"id"`
	}

	lines := make(map[string]geom.LineString, len(fc.Features))
	for i, f := range fc.Features {
		line, err := f.Geometry.lineString()
		if err != nil {
			return nil, fmt.Errorf("feature %d in %s: %w", i, path, err)
		}
		var props lineProps
		if err := json.Unmarshal(f.Properties, &props); err != nil {
			return nil, fmt.Errorf("feature %d in %s: %w", i, path, err)
		}
		lines[props.ID] = line
	}
	return lines, nil
}

// LoadZones reads the predicted interaction zone polygons.
func LoadZones(path, crs string) ([]models.Zone, error) {
	fc, err := loadCollection(path, crs)
	if err != nil {
		return nil, err
	}

	type zoneProps struct {
		ID string `json:"id"`
	}

	zones := make([]models.Zone, 0, len(fc.Features))
	for i, f := range fc.Features {
		pg, err := f.Geometry.polygon()
		if err != nil {
			return nil, fmt.Errorf("feature %d in %s: %w", i, path, err)
		}
		var props zoneProps
		if err := json.Unmarshal(f.Properties, &props); err != nil {
			return nil, fmt.Errorf("feature %d in %s: %w", i, path, err)
		}
		zones = append(zones, models.Zone{ID: props.ID, Polygon: pg})
	}
	return zones, nil
}

// LoadFocus reads the single focus area polygon.
func LoadFocus(path, crs string) (models.FocusArea, error) {
	fc, err := loadCollection(path, crs)
	if err != nil {
		return models.FocusArea{}, err
	}
	if len(fc.Features) != 1 {
		return models.FocusArea{}, fmt.Errorf("focus area file %s must contain exactly 1 polygon, got %d", path, len(fc.Features))
	}
	pg, err := fc.Features[0].Geometry.polygon()
	if err != nil {
		return models.FocusArea{}, fmt.Errorf("focus area in %s: %w", path, err)
	}
	return models.FocusArea{Polygon: pg}, nil
}
