package encounter

// Effect is one atomic, not-yet-applied consequence of an encounter. The
// runtime only accumulates effects; applying them to campaign state is the
// caller's job. GotoNode and EndEncounter are flow control: the runtime
// consumes them itself and they never reach the pending list.
//
// The variant set is closed. The campaign applier switches exhaustively over
// it, so adding a variant here forces a decision there.
type Effect interface {
	isEffect()
}

// ResourceDelta adjusts a resource balance by Amount (negative spends).
type ResourceDelta struct {
	Resource string `json:"resource" yaml:"resource"`
	Amount   int    `json:"amount" yaml:"amount"`
}

// CrewInjury injures a crew member. An empty CrewID targets the crew member
// who acted in the triggering check, resolved at application time.
type CrewInjury struct {
	CrewID   string `json:"crew_id,omitempty" yaml:"crew_id,omitempty"`
	Severity int    `json:"severity" yaml:"severity"`
}

// CrewExperience grants experience points.
type CrewExperience struct {
	CrewID string `json:"crew_id,omitempty" yaml:"crew_id,omitempty"`
	Amount int    `json:"amount" yaml:"amount"`
}

// CrewTraitChange adds or removes a trait.
type CrewTraitChange struct {
	CrewID string `json:"crew_id,omitempty" yaml:"crew_id,omitempty"`
	Trait  string `json:"trait" yaml:"trait"`
	Remove bool   `json:"remove,omitempty" yaml:"remove,omitempty"`
}

// ShipDamage reduces hull integrity by Amount.
type ShipDamage struct {
	Amount int `json:"amount" yaml:"amount"`
}

// ReputationDelta adjusts standing with a faction.
type ReputationDelta struct {
	Faction string `json:"faction" yaml:"faction"`
	Amount  int    `json:"amount" yaml:"amount"`
}

// SetFlag sets or clears a campaign flag.
type SetFlag struct {
	Flag  string `json:"flag" yaml:"flag"`
	Value bool   `json:"value" yaml:"value"`
}

// TimeDelay costs extra whole days of travel time.
type TimeDelay struct {
	Days int `json:"days" yaml:"days"`
}

// CargoDelta adds (positive) or removes (negative) cargo value, optionally
// flagging it as illegal goods.
type CargoDelta struct {
	Descriptor string `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Value      int    `json:"value" yaml:"value"`
	Illegal    bool   `json:"illegal,omitempty" yaml:"illegal,omitempty"`
}

// CrewRecruit adds a new crew member to the roster.
type CrewRecruit struct {
	Name string `json:"name" yaml:"name"`
}

// TacticalMission hands off to the combat engine once travel concludes.
type TacticalMission struct {
	MissionType string `json:"mission_type" yaml:"mission_type"`
}

// GotoNode jumps the encounter to another node. Flow control only.
type GotoNode struct {
	NodeID string `json:"node_id" yaml:"node_id"`
}

// EndEncounter completes the encounter immediately. Flow control only.
type EndEncounter struct{}

func (ResourceDelta) isEffect()   {}
func (CrewInjury) isEffect()      {}
func (CrewExperience) isEffect()  {}
func (CrewTraitChange) isEffect() {}
func (ShipDamage) isEffect()      {}
func (ReputationDelta) isEffect() {}
func (SetFlag) isEffect()         {}
func (TimeDelay) isEffect()       {}
func (CargoDelta) isEffect()      {}
func (CrewRecruit) isEffect()     {}
func (TacticalMission) isEffect() {}
func (GotoNode) isEffect()        {}
func (EndEncounter) isEffect()    {}
