// Package pipeline runs the evaluation end to end: load, filter, classify,
// detect, compare. The whole computation is a single-threaded batch over
// in-memory data; it runs to completion or fails outright.
package pipeline

import (
	"fmt"
	"log"
	"sort"

	"github.com/velotrace/zoneval/internal/classify"
	"github.com/velotrace/zoneval/internal/compare"
	"github.com/velotrace/zoneval/internal/config"
	"github.com/velotrace/zoneval/internal/detect"
	"github.com/velotrace/zoneval/internal/geom"
	"github.com/velotrace/zoneval/internal/ingest"
	"github.com/velotrace/zoneval/internal/models"
)

// Input holds the loaded datasets, all in the shared CRS.
type Input struct {
	Points []models.TrajectoryPoint
	Lines  map[string]geom.LineString
	Zones  []models.Zone
	Focus  models.FocusArea
}

// Result is the full output of one evaluation run.
type Result struct {
	Events           []models.InteractionEvent
	Counts           compare.Counts
	GridCells        []models.GridCell
	DensitySummaries []compare.DensitySummary
	Quadrat          compare.QuadratResult
	KDE              *compare.Raster

	PointCount          int
	TrajectoryCount     int
	SkippedTrajectories int
}

// Pipeline executes the evaluation with a fixed, validated configuration.
type Pipeline struct {
	cfg *config.Config
}

// New creates a pipeline. The config must already be validated; New rejects
// one that is not, so invalid thresholds never reach the primitives.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}
	return &Pipeline{cfg: cfg}, nil
}

// Load reads all datasets, checking each against the configured CRS.
func (p *Pipeline) Load() (*Input, error) {
	points, err := ingest.LoadPoints(p.cfg.Data.Points, p.cfg.CRS)
	if err != nil {
		return nil, fmt.Errorf("failed to load points: %w", err)
	}
	var lines map[string]geom.LineString
	if p.cfg.Data.Lines != "" {
		lines, err = ingest.LoadLines(p.cfg.Data.Lines, p.cfg.CRS)
		if err != nil {
			return nil, fmt.Errorf("failed to load lines: %w", err)
		}
	}
	zones, err := ingest.LoadZones(p.cfg.Data.Zones, p.cfg.CRS)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}
	focus, err := ingest.LoadFocus(p.cfg.Data.Focus, p.cfg.CRS)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus area: %w", err)
	}
	return &Input{Points: points, Lines: lines, Zones: zones, Focus: focus}, nil
}

// Run loads the datasets and evaluates them.
func (p *Pipeline) Run() (*Result, error) {
	in, err := p.Load()
	if err != nil {
		return nil, err
	}
	return p.Evaluate(in)
}

// Evaluate executes the stages strictly in sequence over already-loaded
// input. Deterministic: the same input always yields the same result.
func (p *Pipeline) Evaluate(in *Input) (*Result, error) {
	trajectories, skipped := p.buildTrajectories(in)
	log.Printf("[Pipeline] built %d trajectories from %d points (%d skipped)",
		len(trajectories), len(in.Points), skipped)

	filtered := p.filterTrajectories(trajectories, in.Focus)
	log.Printf("[Pipeline] %d trajectories after displacement/focus filter", len(filtered))

	for _, t := range filtered {
		classify.Classify(t, p.cfg.Classify.DominanceThreshold)
	}

	var bikes, cars []*models.Trajectory
	for _, t := range filtered {
		switch t.Mode {
		case models.ModeBike:
			bikes = append(bikes, t)
		case models.ModeCar:
			cars = append(cars, t)
		}
	}
	log.Printf("[Pipeline] classified: %d bike, %d car trajectories", len(bikes), len(cars))

	events := p.detect(bikes, cars, in.Focus)
	events = compare.JoinZones(events, in.Zones)

	result := &Result{
		Events:              events,
		Counts:              compare.CountByClassification(events),
		PointCount:          len(in.Points),
		TrajectoryCount:     len(filtered),
		SkippedTrajectories: skipped,
	}

	result.GridCells = compare.GridDensity(events, in.Focus, in.Zones, p.cfg.Compare.GridCellSizeM)
	result.DensitySummaries = compare.SummarizeDensity(result.GridCells)
	result.Quadrat = compare.QuadratTest(events, in.Focus,
		p.cfg.Compare.QuadratNX, p.cfg.Compare.QuadratNY, p.cfg.Compare.JitterSeed)
	result.KDE = compare.KernelDensity(events, in.Focus,
		p.cfg.Compare.KDEBandwidthM, p.cfg.Compare.KDECellSizeM)

	log.Printf("[Pipeline] %d interaction events (%d in / %d out)",
		result.Counts.Total, result.Counts.In, result.Counts.Out)
	return result, nil
}

// buildTrajectories groups points by track id, orders each track by time and
// derives the trajectory geometry. Tracks with fewer than 2 points are
// counted and skipped, not failed. When a line dataset is present, tracks
// are joined to it on track_id == line id and unmatched tracks are dropped.
func (p *Pipeline) buildTrajectories(in *Input) ([]*models.Trajectory, int) {
	grouped := make(map[string][]models.TrajectoryPoint)
	var order []string
	for _, pt := range in.Points {
		if _, ok := grouped[pt.TrackID]; !ok {
			order = append(order, pt.TrackID)
		}
		grouped[pt.TrackID] = append(grouped[pt.TrackID], pt)
	}

	var trajectories []*models.Trajectory
	skipped := 0
	for _, id := range order {
		points := grouped[id]
		sort.SliceStable(points, func(i, j int) bool { return points[i].Time < points[j].Time })

		if in.Lines != nil {
			if _, ok := in.Lines[id]; !ok {
				log.Printf("[Pipeline] track %s has no line record, dropping", id)
				skipped++
				continue
			}
		}

		t, err := models.NewTrajectory(id, points)
		if err != nil {
			log.Printf("[Pipeline] track %s skipped: %v", id, err)
			skipped++
			continue
		}
		trajectories = append(trajectories, t)
	}
	return trajectories, skipped
}

// filterTrajectories keeps trajectories whose displacement lies strictly
// inside the configured window and that intersect the focus area.
func (p *Pipeline) filterTrajectories(trajectories []*models.Trajectory, focus models.FocusArea) []*models.Trajectory {
	var kept []*models.Trajectory
	for _, t := range trajectories {
		if t.Displacement <= p.cfg.Filter.MinDisplacementM || t.Displacement >= p.cfg.Filter.MaxDisplacementM {
			continue
		}
		if !t.IntersectsPolygon(focus.Polygon) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// detect runs both detectors over the classified bike and car sets.
func (p *Pipeline) detect(bikes, cars []*models.Trajectory, focus models.FocusArea) []models.InteractionEvent {
	var bikePoints, carPoints []models.TrajectoryPoint
	for _, t := range bikes {
		bikePoints = append(bikePoints, t.Points...)
	}
	for _, t := range cars {
		carPoints = append(carPoints, t.Points...)
	}

	events := detect.Prism(bikePoints, carPoints, detect.PrismConfig{
		RadiusM: p.cfg.Detect.PrismRadiusM,
		WindowS: p.cfg.Detect.PrismWindowS,
	}, focus)

	boundary := detect.BoundaryPoints(append(append([]*models.Trajectory{}, bikes...), cars...))
	events = append(events, detect.PET(
		detect.SegmentsOf(bikes),
		detect.SegmentsOf(cars),
		detect.PETConfig{ThresholdS: p.cfg.Detect.PETThresholdS},
		focus,
		boundary,
	)...)

	return events
}
