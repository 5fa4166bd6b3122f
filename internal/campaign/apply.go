package campaign

import (
	"fmt"

	"github.com/SFerenczy/FringeTactics-sub005/internal/encounter"
)

// ApplyResult summarizes what an Apply pass changed that the travel layer
// cares about: extra days lost to delays.
type ApplyResult struct {
	DelayDays int
}

// Apply commits drained encounter effects to campaign state, in order. The
// switch is exhaustive over the effect variant set; flow-control variants
// are runtime-internal and reaching this applier is a bug worth reporting.
func (c *Campaign) Apply(effects []encounter.Effect) (ApplyResult, error) {
	var result ApplyResult
	for _, effect := range effects {
		switch e := effect.(type) {
		case encounter.ResourceDelta:
			if c.Resources == nil {
				c.Resources = make(map[string]int)
			}
			c.Resources[e.Resource] += e.Amount
			if c.Resources[e.Resource] < 0 {
				c.Resources[e.Resource] = 0
			}
		case encounter.CrewInjury:
			c.injureCrew(e)
		case encounter.CrewExperience:
			c.grantExperience(e)
		case encounter.CrewTraitChange:
			c.changeTrait(e)
		case encounter.ShipDamage:
			c.Hull -= e.Amount
			if c.Hull < 0 {
				c.Hull = 0
			}
		case encounter.ReputationDelta:
			if c.Reputation == nil {
				c.Reputation = make(map[string]int)
			}
			c.Reputation[e.Faction] += e.Amount
		case encounter.SetFlag:
			if c.Flags == nil {
				c.Flags = make(map[string]bool)
			}
			if e.Value {
				c.Flags[e.Flag] = true
			} else {
				delete(c.Flags, e.Flag)
			}
		case encounter.TimeDelay:
			if e.Days > 0 {
				c.AdvanceDays(e.Days)
				result.DelayDays += e.Days
			}
		case encounter.CargoDelta:
			c.CargoValue += e.Value
			if c.CargoValue < 0 {
				c.CargoValue = 0
			}
			if e.Illegal && e.Value > 0 {
				c.CargoIllegal = true
			}
			if c.CargoValue == 0 {
				c.CargoIllegal = false
			}
		case encounter.CrewRecruit:
			c.Crew = append(c.Crew, &CrewMember{
				ID:    nextCrewID(c.Crew),
				Name:  e.Name,
				Alive: true,
			})
		case encounter.TacticalMission:
			c.PendingMissions = append(c.PendingMissions, e.MissionType)
		case encounter.GotoNode, encounter.EndEncounter:
			return result, fmt.Errorf("flow-control effect %T reached the applier", effect)
		default:
			return result, fmt.Errorf("unhandled effect %T", effect)
		}
	}
	return result, nil
}

// injureCrew targets the named member, or the first living member when no
// target is recorded. A severity past 2 on an already-injured member kills.
func (c *Campaign) injureCrew(e encounter.CrewInjury) {
	member, ok := c.crewByID(e.CrewID)
	if !ok {
		for _, candidate := range c.Crew {
			if candidate.Alive {
				member = candidate
				ok = true
				break
			}
		}
	}
	if !ok {
		return
	}
	member.Injuries += e.Severity
	if member.Injuries > 2 && e.Severity >= 2 {
		member.Alive = false
	}
}

// grantExperience targets the named member or spreads the grant to everyone
// living when no target is recorded.
func (c *Campaign) grantExperience(e encounter.CrewExperience) {
	if member, ok := c.crewByID(e.CrewID); ok {
		member.XP += e.Amount
		return
	}
	for _, member := range c.Crew {
		if member.Alive {
			member.XP += e.Amount
		}
	}
}

func (c *Campaign) changeTrait(e encounter.CrewTraitChange) {
	member, ok := c.crewByID(e.CrewID)
	if !ok {
		if len(c.Crew) == 0 {
			return
		}
		member = c.Crew[0]
	}
	if e.Remove {
		kept := member.Traits[:0]
		for _, trait := range member.Traits {
			if trait != e.Trait {
				kept = append(kept, trait)
			}
		}
		member.Traits = kept
		return
	}
	if !member.hasTrait(e.Trait) {
		member.Traits = append(member.Traits, e.Trait)
	}
}
