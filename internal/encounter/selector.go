package encounter

import "sort"

// Registry holds the authored template pool, keyed by id. Iteration order is
// fixed (sorted by id) so weighted selection is reproducible.
type Registry struct {
	templates map[string]*Template
}

func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Register validates and adds a template. Re-registering an id replaces it.
func (r *Registry) Register(template *Template) error {
	if err := template.Validate(); err != nil {
		return err
	}
	r.templates[template.ID] = template
	return nil
}

func (r *Registry) Template(id string) (*Template, bool) {
	template, ok := r.templates[id]
	return template, ok
}

func (r *Registry) Templates() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, template := range r.templates {
		out = append(out, template)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Selection weighting knobs. Weights start at 1.0, are scaled by the
// situational factors below, and never drop under weightFloor so an eligible
// template always has some chance.
const (
	weightFloor       = 0.1
	rareScale         = 0.3
	suggestedScale    = 2.0
	metricScaleBase   = 0.5
	metricScaleStep   = 0.25
	hazardWeightScale = 0.2
)

// Generate filters the registry against ctx, picks one template by weighted
// roulette using a single stream draw, and returns a ready-to-run instance
// with its text parameters resolved. A nil return means no eligible content:
// the caller treats it as "no encounter this roll" and continues.
func (r *Registry) Generate(ctx *Context) *Instance {
	eligible := make([]*Template, 0)
	for _, template := range r.Templates() {
		if templateEligible(template, ctx) {
			eligible = append(eligible, template)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	weights := make([]float64, len(eligible))
	total := 0.0
	for i, template := range eligible {
		weights[i] = templateWeight(template, ctx)
		total += weights[i]
	}

	roll := ctx.Stream.Float64() * total
	chosen := eligible[len(eligible)-1]
	cumulative := 0.0
	for i, template := range eligible {
		cumulative += weights[i]
		if roll < cumulative {
			chosen = template
			break
		}
	}

	instance := NewInstance(chosen)
	resolveParams(instance, ctx)
	return instance
}

// templateEligible keeps templates matching the context's suggested type.
// With no suggestion everything qualifies; with one, only templates carrying
// that tag or the generic tag do.
func templateEligible(template *Template, ctx *Context) bool {
	if ctx.SuggestedType == "" {
		return true
	}
	return template.HasTag(ctx.SuggestedType) || template.HasTag("generic")
}

func templateWeight(template *Template, ctx *Context) float64 {
	weight := 1.0
	if template.HasTag("pirate") {
		weight *= metricScaleBase + metricScaleStep*float64(ctx.CriminalActivity)
	}
	if template.HasTag("patrol") {
		weight *= metricScaleBase + metricScaleStep*float64(ctx.Security)
	}
	if template.HasTag("combat") {
		weight *= 1.0 + hazardWeightScale*float64(ctx.RouteHazard)
	}
	if template.HasTag("rare") {
		weight *= rareScale
	}
	if ctx.SuggestedType != "" && template.HasTag(ctx.SuggestedType) {
		weight *= suggestedScale
	}
	if weight < weightFloor {
		weight = weightFloor
	}
	return weight
}
