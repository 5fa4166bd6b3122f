package encounter

// Condition gates the visibility of an encounter option. Evaluation is pure:
// it reads the context snapshot and nothing else. The variant set is closed;
// new kinds are added here and nowhere else.
type Condition interface {
	// Holds reports whether the condition is satisfied in ctx.
	Holds(ctx *Context) bool
}

// MinResource requires a resource balance of at least Amount.
type MinResource struct {
	Resource string `json:"resource" yaml:"resource"`
	Amount   int    `json:"amount" yaml:"amount"`
}

func (c MinResource) Holds(ctx *Context) bool {
	return ctx.Resource(c.Resource) >= c.Amount
}

// CrewHasTrait requires any crew member to carry the trait.
type CrewHasTrait struct {
	Trait string `json:"trait" yaml:"trait"`
}

func (c CrewHasTrait) Holds(ctx *Context) bool {
	return ctx.AnyCrewHasTrait(c.Trait)
}

// MinCargoValue requires the current cargo value to be at least Amount.
type MinCargoValue struct {
	Amount int `json:"amount" yaml:"amount"`
}

func (c MinCargoValue) Holds(ctx *Context) bool {
	return ctx.CargoValue >= c.Amount
}

// MinReputation requires standing with a faction of at least Amount.
type MinReputation struct {
	Faction string `json:"faction" yaml:"faction"`
	Amount  int    `json:"amount" yaml:"amount"`
}

func (c MinReputation) Holds(ctx *Context) bool {
	return ctx.ReputationWith(c.Faction) >= c.Amount
}

// LocationHasTag requires the current location to carry the tag.
type LocationHasTag struct {
	Tag string `json:"tag" yaml:"tag"`
}

func (c LocationHasTag) Holds(ctx *Context) bool {
	return ctx.LocationHasTag(c.Tag)
}

// MinBestStat requires the best crew value for a stat to be at least Value.
type MinBestStat struct {
	Stat  Stat `json:"stat" yaml:"stat"`
	Value int  `json:"value" yaml:"value"`
}

func (c MinBestStat) Holds(ctx *Context) bool {
	best := -1
	for _, crew := range ctx.Crew {
		if v := crew.Stats.Value(c.Stat); v > best {
			best = v
		}
	}
	return best >= c.Value
}

// HasFlag requires a campaign flag to be set.
type HasFlag struct {
	Flag string `json:"flag" yaml:"flag"`
}

func (c HasFlag) Holds(ctx *Context) bool {
	return ctx.HasFlag(c.Flag)
}

// Not inverts its child condition.
type Not struct {
	Child Condition `json:"child" yaml:"child"`
}

func (c Not) Holds(ctx *Context) bool {
	if c.Child == nil {
		return false
	}
	return !c.Child.Holds(ctx)
}

// allHold reports whether every condition in the list holds. An empty list
// always holds.
func allHold(conditions []Condition, ctx *Context) bool {
	for _, cond := range conditions {
		if cond == nil || !cond.Holds(ctx) {
			return false
		}
	}
	return true
}
