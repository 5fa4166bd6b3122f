package encounter

// CheckDef specifies a stat-based probabilistic check attached to an option.
type CheckDef struct {
	Stat          Stat     `json:"stat" yaml:"stat"`
	Difficulty    int      `json:"difficulty" yaml:"difficulty"`
	BonusTraits   []string `json:"bonus_traits,omitempty" yaml:"bonus_traits,omitempty"`
	PenaltyTraits []string `json:"penalty_traits,omitempty" yaml:"penalty_traits,omitempty"`
}

// CheckResult records one resolved check. Crew is nil when no crew member was
// available to act, which resolves as a guaranteed failure.
type CheckResult struct {
	Crew            *CrewSummary
	Roll            int
	StatValue       int
	TraitBonus      int
	Total           int
	Margin          int
	Success         bool
	CriticalSuccess bool
	CriticalFailure bool
}

const (
	checkDieSides      = 10
	traitBonusStep     = 2
	criticalMargin     = 5
	checkSureThing     = 1  // difficulty - best <= this: cannot fail
	checkOutOfReach    = 10 // difficulty - best > this: cannot succeed
	checkChancePerStep = 10
)

// TraitBonus computes the net trait modifier a crew member brings to a check:
// +2 per bonus trait present, -2 per penalty trait present.
func (d CheckDef) TraitBonus(crew CrewSummary) int {
	bonus := 0
	for _, trait := range d.BonusTraits {
		if crew.HasTrait(trait) {
			bonus += traitBonusStep
		}
	}
	for _, trait := range d.PenaltyTraits {
		if crew.HasTrait(trait) {
			bonus -= traitBonusStep
		}
	}
	return bonus
}

// BestCrewFor picks the crew member maximizing stat value plus net trait
// bonus, ties broken by list order. Reports false for an empty roster.
func (d CheckDef) BestCrewFor(crew []CrewSummary) (CrewSummary, bool) {
	var best CrewSummary
	bestValue := 0
	found := false
	for _, candidate := range crew {
		value := candidate.Stats.Value(d.Stat) + d.TraitBonus(candidate)
		if !found || value > bestValue {
			best = candidate
			bestValue = value
			found = true
		}
	}
	return best, found
}

// Resolve draws one die from the context stream and resolves the check with
// the auto-selected best-qualified crew member. An empty roster yields a
// guaranteed failure with no acting crew and consumes no draw.
func (d CheckDef) Resolve(ctx *Context) CheckResult {
	crew, ok := d.BestCrewFor(ctx.Crew)
	if !ok {
		return CheckResult{
			Margin:          -d.Difficulty,
			CriticalFailure: d.Difficulty >= criticalMargin,
		}
	}
	return d.ResolveWith(ctx, crew)
}

// ResolveWith resolves the check with an explicitly chosen crew member.
func (d CheckDef) ResolveWith(ctx *Context, crew CrewSummary) CheckResult {
	roll := ctx.Stream.Die(checkDieSides)
	statValue := crew.Stats.Value(d.Stat)
	traitBonus := d.TraitBonus(crew)
	total := roll + statValue + traitBonus
	margin := total - d.Difficulty
	success := total >= d.Difficulty

	acted := crew
	return CheckResult{
		Crew:            &acted,
		Roll:            roll,
		StatValue:       statValue,
		TraitBonus:      traitBonus,
		Total:           total,
		Margin:          margin,
		Success:         success,
		CriticalSuccess: success && margin >= criticalMargin,
		CriticalFailure: !success && margin <= -criticalMargin,
	}
}

// SuccessChance previews the check's success probability (whole percent) for
// the best-qualified member of crew, without consuming a draw.
func (d CheckDef) SuccessChance(crew []CrewSummary) int {
	best, ok := d.BestCrewFor(crew)
	if !ok {
		return 0
	}
	return d.SuccessChanceWithCrew(best)
}

// SuccessChanceWithCrew previews the success probability for one crew member.
func (d CheckDef) SuccessChanceWithCrew(crew CrewSummary) int {
	gap := d.Difficulty - (crew.Stats.Value(d.Stat) + d.TraitBonus(crew))
	switch {
	case gap > checkOutOfReach:
		return 0
	case gap <= checkSureThing:
		return 100
	default:
		return (checkOutOfReach + 1 - gap) * checkChancePerStep
	}
}
