package travel

import (
	"github.com/SFerenczy/FringeTactics-sub005/internal/campaign"
	"github.com/SFerenczy/FringeTactics-sub005/internal/encounter"
	"github.com/SFerenczy/FringeTactics-sub005/internal/world"
)

type Status string

const (
	StatusExecuting          Status = "executing"
	StatusPausedForEncounter Status = "paused_for_encounter"
	StatusCompleted          Status = "completed"
	StatusInterrupted        Status = "interrupted"
)

// InterruptReason codes why a journey stopped short of its destination.
type InterruptReason string

const (
	ReasonInsufficientFuel InterruptReason = "insufficient_fuel"
	ReasonInvalidPlan      InterruptReason = "invalid_plan"
)

// State is the resumable cursor over a plan. It exists from the first
// Execute call until travel completes or is abandoned.
type State struct {
	Plan            *Plan
	SegmentIndex    int
	DaysIntoSegment int
	FuelSpent       int
	DaysElapsed     int
	Encounter       *encounter.Instance
}

// Result is what Execute and Resume hand back. State and Encounter are set
// only for a paused result; a paused journey continues via Resume and
// nothing else.
type Result struct {
	Status      Status
	FuelSpent   int
	DaysElapsed int
	Reason      InterruptReason
	State       *State
	Encounter   *encounter.Instance
}

// EncounterOutcome summarizes a concluded (or abandoned) encounter for the
// Resume call. DelayDays carries time-delay effects the applier committed,
// so the travel clock and the campaign clock agree.
type EncounterOutcome struct {
	Completed bool
	DelayDays int
}

// Executor advances journeys one day at a time: spend the day's fuel share,
// advance the clock, roll the segment's encounter chance, and either keep
// going, pause for a generated encounter, or finish.
type Executor struct {
	graph    *world.Graph
	registry *encounter.Registry
}

func NewExecutor(graph *world.Graph, registry *encounter.Registry) *Executor {
	return &Executor{graph: graph, registry: registry}
}

// Execute starts a journey over plan. It returns when the journey completes,
// is interrupted, or pauses for an encounter.
func (e *Executor) Execute(plan *Plan, c *campaign.Campaign) Result {
	if plan == nil || !plan.Valid {
		return Result{Status: StatusInterrupted, Reason: ReasonInvalidPlan}
	}
	state := &State{Plan: plan}
	return e.run(state, c)
}

// Resume continues a paused journey. The paused encounter reference is
// discarded; its effects are assumed drained and applied by the caller
// before resuming. The journey may pause again for a later encounter.
func (e *Executor) Resume(state *State, c *campaign.Campaign, outcome EncounterOutcome) Result {
	state.Encounter = nil
	if outcome.DelayDays > 0 {
		state.DaysElapsed += outcome.DelayDays
	}
	return e.run(state, c)
}

func (e *Executor) run(state *State, c *campaign.Campaign) Result {
	plan := state.Plan
	for state.SegmentIndex < len(plan.Segments) {
		seg := &plan.Segments[state.SegmentIndex]
		for state.DaysIntoSegment < seg.Days {
			share := fuelShare(seg, state.DaysIntoSegment)
			if !c.SpendFuel(share) {
				return Result{
					Status:      StatusInterrupted,
					Reason:      ReasonInsufficientFuel,
					FuelSpent:   state.FuelSpent,
					DaysElapsed: state.DaysElapsed,
				}
			}
			state.FuelSpent += share
			state.DaysIntoSegment++
			state.DaysElapsed++
			c.AdvanceDays(1)

			if c.Stream().Float64() < seg.EncounterChance {
				if instance := e.trigger(seg, c); instance != nil {
					state.Encounter = instance
					return Result{
						Status:      StatusPausedForEncounter,
						FuelSpent:   state.FuelSpent,
						DaysElapsed: state.DaysElapsed,
						State:       state,
						Encounter:   instance,
					}
				}
				// No eligible content counts as a quiet day.
			}
		}
		state.SegmentIndex++
		state.DaysIntoSegment = 0
	}
	return Result{
		Status:      StatusCompleted,
		FuelSpent:   state.FuelSpent,
		DaysElapsed: state.DaysElapsed,
	}
}

// trigger builds an encounter context from the active segment and asks the
// registry for an instance. A nil return means travel continues.
func (e *Executor) trigger(seg *Segment, c *campaign.Campaign) *encounter.Instance {
	loc, _ := e.graph.Location(seg.To)
	suggested := ""
	if route, ok := e.graph.Route(seg.RouteID); ok {
		suggested = suggestedEncounterType(route)
	}
	ctx := c.BuildContext(loc, seg.HazardLevel, suggested)
	return e.registry.Generate(ctx)
}

// suggestedEncounterType maps route character to the encounter type the
// selector should favor.
func suggestedEncounterType(route *world.Route) string {
	switch {
	case route.HasTag("blockaded") || route.HasTag("patrolled"):
		return "patrol"
	case route.HasTag("dangerous"):
		return "pirate"
	default:
		return ""
	}
}

// fuelShare splits a segment's fuel cost across its days so the shares sum
// exactly to the segment cost, front-loading the remainder.
func fuelShare(seg *Segment, dayIndex int) int {
	if seg.Days <= 0 {
		return seg.FuelCost
	}
	share := seg.FuelCost / seg.Days
	if dayIndex < seg.FuelCost%seg.Days {
		share++
	}
	return share
}
