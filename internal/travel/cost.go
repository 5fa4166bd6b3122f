package travel

import (
	"math"

	"github.com/SFerenczy/FringeTactics-sub005/internal/world"
)

// Pure cost functions. Everything here is total over valid inputs and holds
// no state.

const (
	fuelPerDistance = 0.1
	hazardChance    = 0.1
	maxChance       = 0.8
	hazardCostScale = 50.0
)

// Fixed per-tag adjustments to a route's per-day encounter probability.
var tagChanceModifiers = map[string]float64{
	"patrolled": -0.10,
	"dangerous": +0.10,
	"hidden":    -0.05,
	"blockaded": +0.20,
	"asteroid":  +0.05,
	"nebula":    +0.05,
}

// FuelCost converts a distance into whole fuel units for a ship with the
// given efficiency. Non-positive efficiency is treated as 1.0.
func FuelCost(distance, efficiency float64) int {
	if distance <= 0 {
		return 0
	}
	if efficiency <= 0 {
		efficiency = 1.0
	}
	cost := int(math.Ceil(distance * fuelPerDistance / efficiency))
	if cost < 0 {
		cost = 0
	}
	return cost
}

// TimeCost converts a distance into whole travel days, never less than one.
// Non-positive speed is treated as 1.0.
func TimeCost(distance, speed float64) int {
	if speed <= 0 {
		speed = 1.0
	}
	days := int(math.Ceil(distance / speed))
	if days < 1 {
		days = 1
	}
	return days
}

// EncounterChance is the per-day encounter probability of a route from its
// hazard level and tags alone, clamped to [0, 0.8].
func EncounterChance(route *world.Route) float64 {
	chance := float64(route.HazardLevel) * hazardChance
	for _, tag := range route.Tags {
		chance += tagChanceModifiers[tag]
	}
	return clampChance(chance)
}

// EncounterChanceAt additionally folds in the security and criminal-activity
// metrics of the route's endpoint locations. Nil endpoints are skipped.
func EncounterChanceAt(route *world.Route, endpoints ...*world.Location) float64 {
	chance := EncounterChance(route)
	for _, loc := range endpoints {
		if loc == nil {
			continue
		}
		if loc.Metrics.Security >= 4 {
			chance -= 0.10
		} else if loc.Metrics.Security <= 1 {
			chance += 0.10
		}
		if loc.Metrics.CriminalActivity >= 4 {
			chance += 0.15
		} else if loc.Metrics.CriminalActivity <= 1 {
			chance -= 0.05
		}
	}
	return clampChance(chance)
}

// PathfindingCost weights a route for shortest-path search: raw distance plus
// a hazard penalty scaled by how much the ship values safety.
func PathfindingCost(route *world.Route, safetyWeight float64) float64 {
	return route.Distance + float64(route.HazardLevel)*hazardCostScale*safetyWeight
}

func clampChance(chance float64) float64 {
	if chance < 0 {
		return 0
	}
	if chance > maxChance {
		return maxChance
	}
	return chance
}
