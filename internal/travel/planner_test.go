package travel

import (
	"testing"

	"github.com/SFerenczy/FringeTactics-sub005/internal/world"
)

// testGraph builds a small sector: a-b-c along a safe lane, a risky direct
// a-c shortcut, and an unreachable island.
func testGraph(t *testing.T) *world.Graph {
	t.Helper()
	g := world.NewGraph()

	locations := []world.Location{
		{ID: "a", Name: "Alpha", X: 0, Y: 0},
		{ID: "b", Name: "Bravo", X: 75, Y: 60},
		{ID: "c", Name: "Charlie", X: 150, Y: 0},
		{ID: "island", Name: "Island", X: 999, Y: 999},
	}
	for _, loc := range locations {
		if err := g.AddLocation(loc); err != nil {
			t.Fatalf("add location: %v", err)
		}
	}

	routes := []world.Route{
		{ID: "ab", A: "a", B: "b", Distance: 100, HazardLevel: 0},
		{ID: "bc", A: "b", B: "c", Distance: 100, HazardLevel: 0},
		{ID: "ac", A: "a", B: "c", Distance: 150, HazardLevel: 4},
	}
	for _, route := range routes {
		if err := g.AddRoute(route); err != nil {
			t.Fatalf("add route: %v", err)
		}
	}
	return g
}

func TestPlanRouteSameLocation(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1})

	plan := planner.PlanRoute("a", "a")
	if plan.Valid {
		t.Fatalf("expected invalid plan")
	}
	if plan.Reason != ReasonSameLocation {
		t.Fatalf("reason = %s, want %s", plan.Reason, ReasonSameLocation)
	}
}

func TestPlanRouteUnknownLocation(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1})

	for _, pair := range [][2]world.LocationID{{"nowhere", "c"}, {"a", "nowhere"}} {
		plan := planner.PlanRoute(pair[0], pair[1])
		if plan.Valid || plan.Reason != ReasonInvalidLocation {
			t.Fatalf("plan %v -> valid=%v reason=%s, want invalid_location", pair, plan.Valid, plan.Reason)
		}
	}
}

func TestPlanRouteNoRoute(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1})

	plan := planner.PlanRoute("a", "island")
	if plan.Valid || plan.Reason != ReasonNoRoute {
		t.Fatalf("valid=%v reason=%s, want no_route", plan.Valid, plan.Reason)
	}
}

func TestPlanRoutePrefersShortPathWhenHazardIgnored(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1, SafetyWeight: 0})

	plan := planner.PlanRoute("a", "c")
	if !plan.Valid {
		t.Fatalf("expected valid plan, reason %s", plan.Reason)
	}
	if len(plan.Segments) != 1 || plan.Segments[0].RouteID != "ac" {
		t.Fatalf("expected direct route ac, got %+v", plan.Segments)
	}
}

func TestPlanRouteAvoidsHazardWithSafetyWeight(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1, SafetyWeight: 1})

	plan := planner.PlanRoute("a", "c")
	if !plan.Valid {
		t.Fatalf("expected valid plan, reason %s", plan.Reason)
	}
	if len(plan.Segments) != 2 || plan.Segments[0].RouteID != "ab" || plan.Segments[1].RouteID != "bc" {
		t.Fatalf("expected safe path ab,bc, got %+v", plan.Segments)
	}
	if plan.Segments[0].From != "a" || plan.Segments[0].To != "b" || plan.Segments[1].To != "c" {
		t.Fatalf("segment endpoints wrong: %+v", plan.Segments)
	}
}

func TestPlanRouteAggregates(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1, SafetyWeight: 1})

	plan := planner.PlanRoute("a", "c")
	if plan.TotalFuel != 20 {
		t.Fatalf("total fuel = %d, want 20", plan.TotalFuel)
	}
	if plan.TotalDays != 2 {
		t.Fatalf("total days = %d, want 2", plan.TotalDays)
	}
	if plan.HazardSum != 0 {
		t.Fatalf("hazard sum = %d, want 0", plan.HazardSum)
	}
}

func TestPlanRouteDeterministic(t *testing.T) {
	planner := NewPlanner(world.BuiltInSector(), ShipProfile{Speed: 100, Efficiency: 1, SafetyWeight: 0.5})

	first := planner.PlanRoute("hale_station", "scrapline")
	if !first.Valid {
		t.Fatalf("expected valid plan, reason %s", first.Reason)
	}
	for i := 0; i < 10; i++ {
		again := planner.PlanRoute("hale_station", "scrapline")
		if len(again.Segments) != len(first.Segments) {
			t.Fatalf("segment count changed: %d != %d", len(again.Segments), len(first.Segments))
		}
		for j := range again.Segments {
			if again.Segments[j].RouteID != first.Segments[j].RouteID {
				t.Fatalf("segment %d changed: %s != %s", j, again.Segments[j].RouteID, first.Segments[j].RouteID)
			}
		}
	}
}

func TestValidateChecksFuel(t *testing.T) {
	planner := NewPlanner(testGraph(t), ShipProfile{Speed: 100, Efficiency: 1})

	plan := planner.PlanRoute("a", "b")
	if !plan.Valid {
		t.Fatalf("expected valid plan")
	}
	if !planner.Validate(plan, plan.TotalFuel) {
		t.Fatalf("expected exact fuel to validate")
	}
	if planner.Validate(plan, plan.TotalFuel-1) {
		t.Fatalf("expected short fuel to fail validation")
	}
	if planner.Validate(planner.PlanRoute("a", "a"), 1000) {
		t.Fatalf("expected invalid plan to fail validation")
	}
}
