package compare

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotrace/zoneval/internal/geom"
	"github.com/velotrace/zoneval/internal/models"
)

func squareZone(id string, minX, minY, maxX, maxY float64) models.Zone {
	return models.Zone{ID: id, Polygon: geom.Polygon{Ring: []r2.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	}}}
}

func eventAt(x, y float64) models.InteractionEvent {
	return models.InteractionEvent{ID: "e", Location: r2.Point{X: x, Y: y}, Algorithm: models.AlgorithmPrism}
}

func TestJoinZones(t *testing.T) {
	zones := []models.Zone{squareZone("z1", 0, 0, 10, 10)}

	t.Run("event inside a zone", func(t *testing.T) {
		joined := JoinZones([]models.InteractionEvent{eventAt(5, 5)}, zones)
		require.Len(t, joined, 1)
		assert.Equal(t, models.ClassificationIn, joined[0].Classification)
		assert.Equal(t, "z1", joined[0].ZoneID)
	})

	t.Run("event outside all zones", func(t *testing.T) {
		joined := JoinZones([]models.InteractionEvent{eventAt(50, 50)}, zones)
		require.Len(t, joined, 1)
		assert.Equal(t, models.ClassificationOut, joined[0].Classification)
		assert.Empty(t, joined[0].ZoneID)
	})

	t.Run("overlapping zones take the first match deterministically", func(t *testing.T) {
		overlapping := []models.Zone{
			squareZone("first", 0, 0, 10, 10),
			squareZone("second", 0, 0, 10, 10),
		}
		for i := 0; i < 10; i++ {
			joined := JoinZones([]models.InteractionEvent{eventAt(5, 5)}, overlapping)
			assert.Equal(t, "first", joined[0].ZoneID)
		}
	})

	t.Run("empty event set", func(t *testing.T) {
		assert.Empty(t, JoinZones(nil, zones))
	})
}

func TestCountByClassification(t *testing.T) {
	t.Run("counts and percentages", func(t *testing.T) {
		zones := []models.Zone{squareZone("z1", 0, 0, 10, 10)}
		events := JoinZones([]models.InteractionEvent{
			eventAt(5, 5), eventAt(6, 6), eventAt(7, 7), eventAt(50, 50),
		}, zones)

		counts := CountByClassification(events)
		assert.Equal(t, 4, counts.Total)
		assert.Equal(t, 3, counts.In)
		assert.Equal(t, 1, counts.Out)
		assert.InDelta(t, 75.0, counts.PercentIn, 1e-9)
		assert.InDelta(t, 25.0, counts.PercentOut, 1e-9)
	})

	t.Run("empty set yields zeros", func(t *testing.T) {
		counts := CountByClassification(nil)
		assert.Equal(t, Counts{}, counts)
	})
}
