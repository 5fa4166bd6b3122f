package campaign

import (
	"fmt"

	"github.com/SFerenczy/FringeTactics-sub005/internal/encounter"
	"github.com/SFerenczy/FringeTactics-sub005/internal/rng"
	"github.com/SFerenczy/FringeTactics-sub005/internal/world"
)

// CrewMember is the authoritative roster record. Encounter code only ever
// sees the CrewSummary view of it.
type CrewMember struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Traits   []string            `json:"traits,omitempty"`
	Stats    encounter.StatBlock `json:"stats"`
	Alive    bool                `json:"alive"`
	Injuries int                 `json:"injuries"`
	XP       int                 `json:"xp"`
}

func (m *CrewMember) hasTrait(trait string) bool {
	for _, t := range m.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// Campaign holds the player-side state this core consumes and the effects
// applier mutates: balances, roster, flags, reputation, cargo, clock, and
// the one deterministic random stream every draw goes through.
type Campaign struct {
	Seed int64 `json:"seed"`
	Day  int   `json:"day"`

	Resources  map[string]int  `json:"resources"`
	Hull       int             `json:"hull"`
	Crew       []*CrewMember   `json:"crew"`
	Flags      map[string]bool `json:"flags,omitempty"`
	Reputation map[string]int  `json:"reputation,omitempty"`

	CargoValue   int `json:"cargo_value"`
	CargoIllegal bool `json:"cargo_illegal"`

	// PendingMissions are tactical hand-offs for the combat engine.
	PendingMissions []string `json:"pending_missions,omitempty"`

	stream *rng.Stream
}

type Config struct {
	Seed    int64
	Fuel    int
	Credits int
	Hull    int
	Crew    []*CrewMember
}

func New(cfg Config) *Campaign {
	hull := cfg.Hull
	if hull <= 0 {
		hull = 100
	}
	return &Campaign{
		Seed: cfg.Seed,
		Day:  1,
		Resources: map[string]int{
			"fuel":    cfg.Fuel,
			"credits": cfg.Credits,
		},
		Hull:       hull,
		Crew:       cfg.Crew,
		Flags:      make(map[string]bool),
		Reputation: make(map[string]int),
		stream:     rng.NewStream(cfg.Seed),
	}
}

// Stream returns the campaign's deterministic draw stream.
func (c *Campaign) Stream() *rng.Stream {
	if c.stream == nil {
		c.stream = rng.NewStream(c.Seed)
	}
	return c.stream
}

// RestoreStream rebuilds the stream at a persisted position.
func (c *Campaign) RestoreStream(pos uint64) {
	c.stream = rng.NewStreamAt(c.Seed, pos)
}

func (c *Campaign) Resource(name string) int {
	return c.Resources[name]
}

func (c *Campaign) Fuel() int { return c.Resource("fuel") }

// SpendFuel deducts amount, refusing (and leaving the balance untouched)
// when it would go negative.
func (c *Campaign) SpendFuel(amount int) bool {
	if amount < 0 {
		return false
	}
	if c.Resources["fuel"] < amount {
		return false
	}
	c.Resources["fuel"] -= amount
	return true
}

func (c *Campaign) AdvanceDays(days int) {
	if days > 0 {
		c.Day += days
	}
}

// DeployableCrew returns the living roster as encounter summaries, in roster
// order.
func (c *Campaign) DeployableCrew() []encounter.CrewSummary {
	out := make([]encounter.CrewSummary, 0, len(c.Crew))
	for _, member := range c.Crew {
		if !member.Alive {
			continue
		}
		out = append(out, encounter.CrewSummary{
			ID:     member.ID,
			Name:   member.Name,
			Traits: append([]string(nil), member.Traits...),
			Stats:  member.Stats,
		})
	}
	return out
}

// BuildContext snapshots campaign and location state for the encounter layer.
// loc may be nil for deep-space triggers.
func (c *Campaign) BuildContext(loc *world.Location, routeHazard int, suggested string) *encounter.Context {
	resources := make(map[string]int, len(c.Resources))
	for name, amount := range c.Resources {
		resources[name] = amount
	}
	reputation := make(map[string]int, len(c.Reputation))
	for faction, standing := range c.Reputation {
		reputation[faction] = standing
	}
	flags := make(map[string]bool, len(c.Flags))
	for flag, value := range c.Flags {
		flags[flag] = value
	}

	ctx := &encounter.Context{
		Resources:     resources,
		Crew:          c.DeployableCrew(),
		RouteHazard:   routeHazard,
		SuggestedType: suggested,
		Reputation:    reputation,
		CargoValue:    c.CargoValue,
		CargoIllegal:  c.CargoIllegal,
		Flags:         flags,
		Stream:        c.Stream(),
	}
	if loc != nil {
		ctx.LocationID = string(loc.ID)
		ctx.LocationName = loc.Name
		ctx.LocationTags = append([]string(nil), loc.Tags...)
		ctx.LocationFaction = loc.FactionID
		ctx.Security = loc.Metrics.Security
		ctx.CriminalActivity = loc.Metrics.CriminalActivity
	}
	return ctx
}

func (c *Campaign) crewByID(id string) (*CrewMember, bool) {
	for _, member := range c.Crew {
		if member.ID == id {
			return member, true
		}
	}
	return nil, false
}

func nextCrewID(crew []*CrewMember) string {
	return fmt.Sprintf("crew_%d", len(crew)+1)
}
