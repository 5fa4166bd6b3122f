package world

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FindLocation resolves a player-typed location name to a location. Exact id
// and exact name matches win outright; otherwise the closest name by edit
// distance is returned, provided it is close enough to be a plausible typo
// (distance no more than a third of the name's length, minimum 2).
func (g *Graph) FindLocation(query string) (*Location, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}

	if loc, ok := g.locations[LocationID(q)]; ok {
		return loc, true
	}

	var best *Location
	bestDist := -1
	for _, loc := range g.Locations() {
		name := strings.ToLower(loc.Name)
		if name == q {
			return loc, true
		}
		d := levenshtein.ComputeDistance(q, name)
		if bestDist == -1 || d < bestDist {
			best = loc
			bestDist = d
		}
	}
	if best == nil {
		return nil, false
	}

	limit := len(best.Name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist > limit {
		return nil, false
	}
	return best, true
}
