package encounter

import "github.com/SFerenczy/FringeTactics-sub005/internal/rng"

// Context is an immutable snapshot of player and world state, built fresh
// from authoritative stores each time the runtime or selector needs one.
// The runtime never mutates it; only the Stream advances as draws happen.
type Context struct {
	Resources map[string]int
	Crew      []CrewSummary

	LocationID      string
	LocationName    string
	LocationTags    []string
	LocationFaction string

	// Situational inputs for selection weighting.
	Security         int
	CriminalActivity int
	RouteHazard      int
	SuggestedType    string

	Reputation   map[string]int
	CargoValue   int
	CargoIllegal bool
	Flags        map[string]bool

	Stream *rng.Stream
}

func (c *Context) Resource(name string) int {
	if c == nil || c.Resources == nil {
		return 0
	}
	return c.Resources[name]
}

func (c *Context) ReputationWith(faction string) int {
	if c == nil || c.Reputation == nil {
		return 0
	}
	return c.Reputation[faction]
}

func (c *Context) HasFlag(flag string) bool {
	if c == nil || c.Flags == nil {
		return false
	}
	return c.Flags[flag]
}

func (c *Context) LocationHasTag(tag string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.LocationTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AnyCrewHasTrait reports whether any crew member in the snapshot carries trait.
func (c *Context) AnyCrewHasTrait(trait string) bool {
	if c == nil {
		return false
	}
	for _, crew := range c.Crew {
		if crew.HasTrait(trait) {
			return true
		}
	}
	return false
}
