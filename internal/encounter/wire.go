package encounter

import "fmt"

// effectWire is the tagged serialized form of an Effect: a type tag plus the
// small fixed parameter set (target id, integer amount, string param, bool
// param). It is what template files and instance snapshots carry; in-memory
// code always works with the typed variants.
type effectWire struct {
	Type   string `json:"type" yaml:"type"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Amount int    `json:"amount,omitempty" yaml:"amount,omitempty"`
	Param  string `json:"param,omitempty" yaml:"param,omitempty"`
	Flag   bool   `json:"flag,omitempty" yaml:"flag,omitempty"`
}

const (
	effectResource   = "resource"
	effectInjury     = "crew_injury"
	effectExperience = "crew_experience"
	effectTrait      = "crew_trait"
	effectShipDamage = "ship_damage"
	effectReputation = "reputation"
	effectSetFlag    = "set_flag"
	effectTimeDelay  = "time_delay"
	effectCargo      = "cargo"
	effectRecruit    = "crew_recruit"
	effectMission    = "tactical_mission"
	effectGoto       = "goto_node"
	effectEnd        = "end_encounter"
)

func wireFromEffect(effect Effect) effectWire {
	switch e := effect.(type) {
	case ResourceDelta:
		return effectWire{Type: effectResource, Target: e.Resource, Amount: e.Amount}
	case CrewInjury:
		return effectWire{Type: effectInjury, Target: e.CrewID, Amount: e.Severity}
	case CrewExperience:
		return effectWire{Type: effectExperience, Target: e.CrewID, Amount: e.Amount}
	case CrewTraitChange:
		return effectWire{Type: effectTrait, Target: e.CrewID, Param: e.Trait, Flag: e.Remove}
	case ShipDamage:
		return effectWire{Type: effectShipDamage, Amount: e.Amount}
	case ReputationDelta:
		return effectWire{Type: effectReputation, Target: e.Faction, Amount: e.Amount}
	case SetFlag:
		return effectWire{Type: effectSetFlag, Target: e.Flag, Flag: e.Value}
	case TimeDelay:
		return effectWire{Type: effectTimeDelay, Amount: e.Days}
	case CargoDelta:
		return effectWire{Type: effectCargo, Param: e.Descriptor, Amount: e.Value, Flag: e.Illegal}
	case CrewRecruit:
		return effectWire{Type: effectRecruit, Param: e.Name}
	case TacticalMission:
		return effectWire{Type: effectMission, Param: e.MissionType}
	case GotoNode:
		return effectWire{Type: effectGoto, Target: e.NodeID}
	case EndEncounter:
		return effectWire{Type: effectEnd}
	default:
		// Unreachable for the closed variant set.
		return effectWire{Type: "unknown"}
	}
}

func (w effectWire) effect() (Effect, error) {
	switch w.Type {
	case effectResource:
		return ResourceDelta{Resource: w.Target, Amount: w.Amount}, nil
	case effectInjury:
		return CrewInjury{CrewID: w.Target, Severity: w.Amount}, nil
	case effectExperience:
		return CrewExperience{CrewID: w.Target, Amount: w.Amount}, nil
	case effectTrait:
		return CrewTraitChange{CrewID: w.Target, Trait: w.Param, Remove: w.Flag}, nil
	case effectShipDamage:
		return ShipDamage{Amount: w.Amount}, nil
	case effectReputation:
		return ReputationDelta{Faction: w.Target, Amount: w.Amount}, nil
	case effectSetFlag:
		return SetFlag{Flag: w.Target, Value: w.Flag}, nil
	case effectTimeDelay:
		return TimeDelay{Days: w.Amount}, nil
	case effectCargo:
		return CargoDelta{Descriptor: w.Param, Value: w.Amount, Illegal: w.Flag}, nil
	case effectRecruit:
		return CrewRecruit{Name: w.Param}, nil
	case effectMission:
		return TacticalMission{MissionType: w.Param}, nil
	case effectGoto:
		return GotoNode{NodeID: w.Target}, nil
	case effectEnd:
		return EndEncounter{}, nil
	default:
		return nil, fmt.Errorf("unknown effect type %q", w.Type)
	}
}

// conditionWire is the tagged authored form of a Condition.
type conditionWire struct {
	Type   string         `yaml:"type"`
	Target string         `yaml:"target,omitempty"`
	Amount int            `yaml:"amount,omitempty"`
	Child  *conditionWire `yaml:"child,omitempty"`
}

func (w conditionWire) condition() (Condition, error) {
	switch w.Type {
	case "min_resource":
		return MinResource{Resource: w.Target, Amount: w.Amount}, nil
	case "crew_trait":
		return CrewHasTrait{Trait: w.Target}, nil
	case "min_cargo_value":
		return MinCargoValue{Amount: w.Amount}, nil
	case "min_reputation":
		return MinReputation{Faction: w.Target, Amount: w.Amount}, nil
	case "location_tag":
		return LocationHasTag{Tag: w.Target}, nil
	case "min_best_stat":
		return MinBestStat{Stat: Stat(w.Target), Value: w.Amount}, nil
	case "has_flag":
		return HasFlag{Flag: w.Target}, nil
	case "not":
		if w.Child == nil {
			return nil, fmt.Errorf("not condition requires a child")
		}
		child, err := w.Child.condition()
		if err != nil {
			return nil, err
		}
		return Not{Child: child}, nil
	default:
		return nil, fmt.Errorf("unknown condition type %q", w.Type)
	}
}
