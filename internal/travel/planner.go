package travel

import (
	"container/heap"

	"github.com/SFerenczy/FringeTactics-sub005/internal/world"
)

// ShipProfile carries the ship parameters planning depends on.
type ShipProfile struct {
	Speed        float64 `json:"speed"`
	Efficiency   float64 `json:"efficiency"`
	SafetyWeight float64 `json:"safety_weight"`
}

// Planner binds a world graph and a ship profile and produces travel plans.
type Planner struct {
	graph   *world.Graph
	profile ShipProfile
}

func NewPlanner(graph *world.Graph, profile ShipProfile) *Planner {
	return &Planner{graph: graph, profile: profile}
}

// PlanRoute searches for the cheapest path from origin to destination under
// PathfindingCost and builds a plan with one segment per traversed route.
// Planning never fails hard: bad input or a disconnected destination yields
// an invalid plan carrying the reason code.
func (p *Planner) PlanRoute(origin, destination world.LocationID) *Plan {
	if origin == destination {
		return invalidPlan(origin, destination, ReasonSameLocation)
	}
	if _, ok := p.graph.Location(origin); !ok {
		return invalidPlan(origin, destination, ReasonInvalidLocation)
	}
	if _, ok := p.graph.Location(destination); !ok {
		return invalidPlan(origin, destination, ReasonInvalidLocation)
	}

	path, found := p.search(origin, destination)
	if !found {
		return invalidPlan(origin, destination, ReasonNoRoute)
	}

	segments := make([]Segment, 0, len(path))
	from := origin
	for _, route := range path {
		to, _ := route.Other(from)
		fromLoc, _ := p.graph.Location(from)
		toLoc, _ := p.graph.Location(to)
		segments = append(segments, Segment{
			RouteID:         route.ID,
			From:            from,
			To:              to,
			Distance:        route.Distance,
			HazardLevel:     route.HazardLevel,
			FuelCost:        FuelCost(route.Distance, p.profile.Efficiency),
			Days:            TimeCost(route.Distance, p.profile.Speed),
			EncounterChance: EncounterChanceAt(route, fromLoc, toLoc),
		})
		from = to
	}
	return newPlan(origin, destination, segments)
}

// Validate reports whether plan can be executed with the given fuel balance.
func (p *Planner) Validate(plan *Plan, availableFuel int) bool {
	return plan != nil && plan.Valid && availableFuel >= plan.TotalFuel
}

// search runs A* with straight-line distance to the goal as the heuristic.
// The heuristic never overestimates PathfindingCost (which is at least raw
// distance), so the first settled goal is optimal. Neighbor expansion order
// and a FIFO tie-break keep results deterministic for identical inputs.
func (p *Planner) search(origin, destination world.LocationID) ([]*world.Route, bool) {
	open := &nodeQueue{}
	heap.Init(open)
	heap.Push(open, &searchNode{
		location: origin,
		f:        p.graph.Distance(origin, destination),
	})

	gScore := map[world.LocationID]float64{origin: 0}
	cameFrom := make(map[world.LocationID]*world.Route)
	settled := make(map[world.LocationID]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if settled[current.location] {
			continue
		}
		settled[current.location] = true

		if current.location == destination {
			return p.reconstruct(cameFrom, origin, destination), true
		}

		for _, route := range p.graph.RoutesFrom(current.location) {
			neighbor, ok := route.Other(current.location)
			if !ok || settled[neighbor] {
				continue
			}
			tentative := gScore[current.location] + PathfindingCost(route, p.profile.SafetyWeight)
			if best, seen := gScore[neighbor]; seen && tentative >= best {
				continue
			}
			gScore[neighbor] = tentative
			cameFrom[neighbor] = route
			heap.Push(open, &searchNode{
				location: neighbor,
				f:        tentative + p.graph.Distance(neighbor, destination),
			})
		}
	}
	return nil, false
}

func (p *Planner) reconstruct(cameFrom map[world.LocationID]*world.Route, origin, destination world.LocationID) []*world.Route {
	var reversed []*world.Route
	at := destination
	for at != origin {
		route := cameFrom[at]
		reversed = append(reversed, route)
		prev, _ := route.Other(at)
		at = prev
	}
	path := make([]*world.Route, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

type searchNode struct {
	location world.LocationID
	f        float64
	seq      int
}

type nodeQueue struct {
	nodes   []*searchNode
	counter int
}

func (q *nodeQueue) Len() int { return len(q.nodes) }

func (q *nodeQueue) Less(i, j int) bool {
	if q.nodes[i].f != q.nodes[j].f {
		return q.nodes[i].f < q.nodes[j].f
	}
	return q.nodes[i].seq < q.nodes[j].seq
}

func (q *nodeQueue) Swap(i, j int) { q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i] }

func (q *nodeQueue) Push(x any) {
	node := x.(*searchNode)
	node.seq = q.counter
	q.counter++
	q.nodes = append(q.nodes, node)
}

func (q *nodeQueue) Pop() any {
	old := q.nodes
	n := len(old)
	node := old[n-1]
	q.nodes = old[:n-1]
	return node
}
