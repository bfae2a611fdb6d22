// Package compare joins detected interaction events against the predicted
// interaction-zone polygons and computes the density surfaces and statistics
// used to evaluate the prediction.
package compare

import "github.com/velotrace/zoneval/internal/models"

// JoinZones classifies every event as "in" if it falls inside any zone
// polygon, else "out". On overlapping zones the first matching zone in slice
// order wins, so the join is deterministic for a fixed zone ordering.
// Returns a new slice; inputs are not mutated.
func JoinZones(events []models.InteractionEvent, zones []models.Zone) []models.InteractionEvent {
	joined := make([]models.InteractionEvent, len(events))
	for i, e := range events {
		e.Classification = models.ClassificationOut
		e.ZoneID = ""
		for _, z := range zones {
			if z.Polygon.Contains(e.Location) {
				e.Classification = models.ClassificationIn
				e.ZoneID = z.ID
				break
			}
		}
		joined[i] = e
	}
	return joined
}

// Counts summarizes interaction events by zone classification.
type Counts struct {
	Total      int     `json:"total"`
	In         int     `json:"in"`
	Out        int     `json:"out"`
	PercentIn  float64 `json:"percent_in"`
	PercentOut float64 `json:"percent_out"`
}

// CountByClassification counts events by {in, out}. An empty event set
// yields all zeros.
func CountByClassification(events []models.InteractionEvent) Counts {
	c := Counts{Total: len(events)}
	for _, e := range events {
		if e.Classification == models.ClassificationIn {
			c.In++
		} else {
			c.Out++
		}
	}
	if c.Total > 0 {
		c.PercentIn = 100 * float64(c.In) / float64(c.Total)
		c.PercentOut = 100 * float64(c.Out) / float64(c.Total)
	}
	return c
}
