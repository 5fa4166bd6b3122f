package world

import (
	"fmt"
	"math"
	"sort"
)

type LocationID string

type RouteID string

// Metrics are the 0-5 situational ratings a system carries. They feed both
// encounter probability and selector weighting.
type Metrics struct {
	Security         int `json:"security"`
	CriminalActivity int `json:"criminal_activity"`
}

type Location struct {
	ID        LocationID `json:"id"`
	Name      string     `json:"name"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	FactionID string     `json:"faction_id,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Metrics   Metrics    `json:"metrics"`
}

func (l *Location) HasTag(tag string) bool {
	if l == nil {
		return false
	}
	return containsTag(l.Tags, tag)
}

// Route is an undirected connection between two locations. Identity and cost
// are independent of traversal direction.
type Route struct {
	ID          RouteID    `json:"id"`
	A           LocationID `json:"a"`
	B           LocationID `json:"b"`
	Distance    float64    `json:"distance"`
	HazardLevel int        `json:"hazard_level"` // 0-5
	Tags        []string   `json:"tags,omitempty"`
}

func (r *Route) HasTag(tag string) bool {
	if r == nil {
		return false
	}
	return containsTag(r.Tags, tag)
}

// Other returns the endpoint opposite from. Reports false when from is not an
// endpoint of the route.
func (r *Route) Other(from LocationID) (LocationID, bool) {
	switch from {
	case r.A:
		return r.B, true
	case r.B:
		return r.A, true
	default:
		return "", false
	}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Graph is the world map this core plans and travels over. It is built once
// by the authoring layer and treated as read-only afterwards.
type Graph struct {
	locations map[LocationID]*Location
	routes    map[RouteID]*Route
	adjacency map[LocationID][]*Route
}

func NewGraph() *Graph {
	return &Graph{
		locations: make(map[LocationID]*Location),
		routes:    make(map[RouteID]*Route),
		adjacency: make(map[LocationID][]*Route),
	}
}

func (g *Graph) AddLocation(loc Location) error {
	if loc.ID == "" {
		return fmt.Errorf("location id must not be empty")
	}
	if _, exists := g.locations[loc.ID]; exists {
		return fmt.Errorf("duplicate location: %s", loc.ID)
	}
	stored := loc
	g.locations[loc.ID] = &stored
	return nil
}

func (g *Graph) AddRoute(route Route) error {
	if route.ID == "" {
		return fmt.Errorf("route id must not be empty")
	}
	if _, exists := g.routes[route.ID]; exists {
		return fmt.Errorf("duplicate route: %s", route.ID)
	}
	if _, ok := g.locations[route.A]; !ok {
		return fmt.Errorf("route %s references unknown location %s", route.ID, route.A)
	}
	if _, ok := g.locations[route.B]; !ok {
		return fmt.Errorf("route %s references unknown location %s", route.ID, route.B)
	}
	if route.HazardLevel < 0 || route.HazardLevel > 5 {
		return fmt.Errorf("route %s hazard level out of range: %d", route.ID, route.HazardLevel)
	}
	stored := route
	g.routes[route.ID] = &stored
	g.adjacency[route.A] = append(g.adjacency[route.A], &stored)
	g.adjacency[route.B] = append(g.adjacency[route.B], &stored)
	return nil
}

func (g *Graph) Location(id LocationID) (*Location, bool) {
	loc, ok := g.locations[id]
	return loc, ok
}

func (g *Graph) Route(id RouteID) (*Route, bool) {
	route, ok := g.routes[id]
	return route, ok
}

// RoutesFrom returns the routes touching id, ordered by route id so planning
// over the same graph is reproducible.
func (g *Graph) RoutesFrom(id LocationID) []*Route {
	routes := append([]*Route(nil), g.adjacency[id]...)
	sort.Slice(routes, func(i, j int) bool { return routes[i].ID < routes[j].ID })
	return routes
}

// RouteBetween finds a direct route connecting a and b in either direction.
func (g *Graph) RouteBetween(a, b LocationID) (*Route, bool) {
	for _, route := range g.RoutesFrom(a) {
		if other, ok := route.Other(a); ok && other == b {
			return route, true
		}
	}
	return nil, false
}

// Distance is the straight-line distance between two known locations, used as
// the planner's heuristic. Unknown ids yield 0.
func (g *Graph) Distance(a, b LocationID) float64 {
	la, okA := g.locations[a]
	lb, okB := g.locations[b]
	if !okA || !okB {
		return 0
	}
	dx := la.X - lb.X
	dy := la.Y - lb.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Locations returns all locations ordered by id.
func (g *Graph) Locations() []*Location {
	out := make([]*Location, 0, len(g.locations))
	for _, loc := range g.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
