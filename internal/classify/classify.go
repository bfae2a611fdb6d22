// Package classify resolves a transport mode for each trajectory from its
// noisy per-point object/vehicle type tags.
package classify

import "github.com/velotrace/zoneval/internal/models"

// Tag values produced by the upstream tracking annotator.
const (
	TagUnclear = "unclear"

	ObjectPedestrian = "pedestrian"

	VehiclePassengerCar = "passengerCar"
	VehicleBike         = "bike"
	VehicleMotorcycle   = "motorcycle"
	VehicleBus          = "bus"
	VehicleHeavyTruck   = "heavyTruck"
)

// DefaultDominanceThreshold is the minimum share of non-missing points the
// dominant tag must reach; below it the tag resolves to "unclear".
const DefaultDominanceThreshold = 0.75

// FillTags back-fills missing type tags within one trajectory: a point with
// no tag takes the tag of the next later point that has one, so the last
// point's tags are authoritative for everything before it. Single backward
// pass over the ordered sequence.
func FillTags(points []models.TrajectoryPoint) {
	var object, vehicle string
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].ObjectType == "" {
			points[i].ObjectType = object
		} else {
			object = points[i].ObjectType
		}
		if points[i].VehicleType == "" {
			points[i].VehicleType = vehicle
		} else {
			vehicle = points[i].VehicleType
		}
	}
}

// Dominant returns the most frequent value among values, ignoring missing
// ("") entries. Ties break to the value that appears first. If the winner's
// share of non-missing values is strictly below threshold the result is
// "unclear"; if every value is missing the result is "".
func Dominant(values []string, threshold float64) string {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		total++
	}
	if total == 0 {
		return ""
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}

	if float64(counts[best])/float64(total) < threshold {
		return TagUnclear
	}
	return best
}

// MapMode maps the dominant object/vehicle tags of a trajectory to a
// transport mode. Rules are evaluated in order and the first match wins.
// The vehicle=unclear rule sits after the vehicle mappings even though the
// object=unclear rule shadows it in most data; it still fires when the
// object tag resolves to a valid non-pedestrian value while the vehicle tag
// is independently unclear.
func MapMode(objectDominant, vehicleDominant string) models.Mode {
	switch {
	case objectDominant == ObjectPedestrian:
		return models.ModePedestrian
	case objectDominant == TagUnclear:
		return models.ModeUnclear
	case vehicleDominant == VehiclePassengerCar:
		return models.ModeCar
	case vehicleDominant == VehicleBike:
		return models.ModeBike
	case vehicleDominant == VehicleMotorcycle:
		return models.ModeMotorcycle
	case vehicleDominant == VehicleBus:
		return models.ModeBus
	case vehicleDominant == VehicleHeavyTruck:
		return models.ModeTruck
	case vehicleDominant == TagUnclear:
		return models.ModeUnclear
	default:
		return models.ModeUnknown
	}
}

// Classify fills the trajectory's tags, resolves the dominant tag per field
// and attaches the mapped transport mode.
func Classify(t *models.Trajectory, threshold float64) {
	FillTags(t.Points)

	objects := make([]string, len(t.Points))
	vehicles := make([]string, len(t.Points))
	for i, p := range t.Points {
		objects[i] = p.ObjectType
		vehicles[i] = p.VehicleType
	}

	t.Mode = MapMode(Dominant(objects, threshold), Dominant(vehicles, threshold))
}
