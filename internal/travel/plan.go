package travel

import "github.com/SFerenczy/FringeTactics-sub005/internal/world"

// InvalidReason codes why a plan could not be built.
type InvalidReason string

const (
	ReasonNone            InvalidReason = ""
	ReasonNoRoute         InvalidReason = "no_route"
	ReasonSameLocation    InvalidReason = "same_location"
	ReasonInvalidLocation InvalidReason = "invalid_location"
)

// Segment is one directed traversal of a route within a plan, with costs
// resolved at planning time. Segments belong to the plan that built them.
type Segment struct {
	RouteID         world.RouteID   `json:"route_id"`
	From            world.LocationID `json:"from"`
	To              world.LocationID `json:"to"`
	Distance        float64         `json:"distance"`
	HazardLevel     int             `json:"hazard_level"`
	FuelCost        int             `json:"fuel_cost"`
	Days            int             `json:"days"`
	EncounterChance float64         `json:"encounter_chance"`
}

// Plan is an immutable ordered route from origin to destination. Aggregates
// are derived from the segments at build time and never mutated separately.
type Plan struct {
	Origin      world.LocationID `json:"origin"`
	Destination world.LocationID `json:"destination"`
	Segments    []Segment        `json:"segments,omitempty"`

	TotalFuel          int     `json:"total_fuel"`
	TotalDays          int     `json:"total_days"`
	HazardSum          int     `json:"hazard_sum"`
	AvgEncounterChance float64 `json:"avg_encounter_chance"`

	Valid  bool          `json:"valid"`
	Reason InvalidReason `json:"reason,omitempty"`
}

func invalidPlan(origin, destination world.LocationID, reason InvalidReason) *Plan {
	return &Plan{Origin: origin, Destination: destination, Reason: reason}
}

func newPlan(origin, destination world.LocationID, segments []Segment) *Plan {
	plan := &Plan{
		Origin:      origin,
		Destination: destination,
		Segments:    segments,
		Valid:       true,
	}
	for _, seg := range segments {
		plan.TotalFuel += seg.FuelCost
		plan.TotalDays += seg.Days
		plan.HazardSum += seg.HazardLevel
		plan.AvgEncounterChance += seg.EncounterChance
	}
	if len(segments) > 0 {
		plan.AvgEncounterChance /= float64(len(segments))
	}
	return plan
}
