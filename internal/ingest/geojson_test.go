package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCRS = "EPSG:25832"

func writeGeoJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPoints(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"crs": "EPSG:25832",
		"features": [
			{"type": "Feature",
			 "geometry": {"type": "Point", "coordinates": [10.5, 20.25]},
			 "properties": {"track_id": "42", "t": 1500, "object_type": "vehicle", "vehicle_type": "bike"}},
			{"type": "Feature",
			 "geometry": {"type": "Point", "coordinates": [11, 21]},
			 "properties": {"track_id": "42", "t": 2500, "object_type": "vehicle", "vehicle_type": ""}}
		]
	}`)

	points, err := LoadPoints(path, testCRS)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "42", points[0].TrackID)
	assert.Equal(t, int64(1500), points[0].Time)
	assert.Equal(t, r2.Point{X: 10.5, Y: 20.25}, points[0].Location)
	assert.Equal(t, "vehicle", points[0].ObjectType)
	assert.Equal(t, "bike", points[0].VehicleType)
	assert.Empty(t, points[1].VehicleType)
}

func TestLoadPointsCRSMismatch(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"crs": "EPSG:4326",
		"features": []
	}`)

	_, err := LoadPoints(path, testCRS)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRS mismatch")
}

func TestLoadPointsRejectsWrongGeometry(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"crs": "EPSG:25832",
		"features": [
			{"type": "Feature",
			 "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]},
			 "properties": {"track_id": "1", "t": 0}}
		]
	}`)

	_, err := LoadPoints(path, testCRS)
	assert.Error(t, err)
}

func TestLoadLines(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"crs": "EPSG:25832",
		"features": [
			{"type": "Feature",
			 "geometry": {"type": "LineString", "coordinates": [[0,0],[5,0],[5,5]]},
			 "properties": {"id": "42"}}
		]
	}`)

	lines, err := LoadLines(path, testCRS)
	require.NoError(t, err)
	require.Contains(t, lines, "42")
	assert.Len(t, lines["42"], 3)
	assert.Equal(t, r2.Point{X: 5, Y: 5}, lines["42"][2])
}

func TestLoadZones(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"crs": "EPSG:25832",
		"features": [
			{"type": "Feature",
			 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]},
			 "properties": {"id": "zone-a"}},
			{"type": "Feature",
			 "geometry": {"type": "Polygon", "coordinates": [[[20,20],[30,20],[30,30],[20,30],[20,20]]]},
			 "properties": {"id": "zone-b"}}
		]
	}`)

	zones, err := LoadZones(path, testCRS)
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "zone-a", zones[0].ID)
	assert.True(t, zones[0].Polygon.Contains(r2.Point{X: 5, Y: 5}))
	assert.False(t, zones[0].Polygon.Contains(r2.Point{X: 25, Y: 25}))
}

func TestLoadFocus(t *testing.T) {
	t.Run("single polygon", func(t *testing.T) {
		path := writeGeoJSON(t, `{
			"type": "FeatureCollection",
			"crs": "EPSG:25832",
			"features": [
				{"type": "Feature",
				 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]},
				 "properties": {}}
			]
		}`)

		focus, err := LoadFocus(path, testCRS)
		require.NoError(t, err)
		assert.True(t, focus.Polygon.Contains(r2.Point{X: 5, Y: 5}))
	})

	t.Run("more than one feature is rejected", func(t *testing.T) {
		path := writeGeoJSON(t, `{
			"type": "FeatureCollection",
			"crs": "EPSG:25832",
			"features": [
				{"type": "Feature",
				 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]},
				 "properties": {}},
				{"type": "Feature",
				 "geometry": {"type": "Polygon", "coordinates": [[[2,2],[3,2],[3,3],[2,2]]]},
				 "properties": {}}
			]
		}`)

		_, err := LoadFocus(path, testCRS)
		assert.Error(t, err)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadPoints("/nonexistent/points.geojson", testCRS)
	assert.Error(t, err)
}
