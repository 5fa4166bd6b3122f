package encounter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Instance is one playthrough's mutable progress through a template. Effects
// accumulate on it until an external applier drains them; nothing is applied
// to campaign state by this package.
type Instance struct {
	ID       string
	Template *Template

	NodeID   string
	History  []string
	Pending  []Effect
	Params   map[string]string
	Complete bool
}

func NewInstance(template *Template) *Instance {
	return &Instance{
		ID:       uuid.NewString(),
		Template: template,
		NodeID:   template.Entry,
		History:  []string{template.Entry},
		Params:   make(map[string]string),
	}
}

// CurrentNode returns the active node, or nil once the instance is complete.
func (i *Instance) CurrentNode() *Node {
	if i == nil || i.Complete {
		return nil
	}
	node, ok := i.Template.Node(i.NodeID)
	if !ok {
		return nil
	}
	return node
}

// PendingEffects returns the accumulated, not-yet-applied effects in order.
func (i *Instance) PendingEffects() []Effect {
	return append([]Effect(nil), i.Pending...)
}

// DrainEffects hands the accumulated effects to the caller and clears the
// pending list. Call once the external applier is ready to commit them.
func (i *Instance) DrainEffects() []Effect {
	drained := i.Pending
	i.Pending = nil
	return drained
}

// RenderText substitutes resolved {parameter} placeholders into text.
func (i *Instance) RenderText(text string) string {
	if i == nil || len(i.Params) == 0 {
		return text
	}
	keys := make([]string, 0, len(i.Params))
	for key := range i.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		text = strings.ReplaceAll(text, "{"+key+"}", i.Params[key])
	}
	return text
}

// Snapshot is the plain-data shape of an instance for persistence. Effects
// are stored in a tagged wire form so the sum type survives a round trip.
type Snapshot struct {
	ID         string            `json:"id"`
	TemplateID string            `json:"template_id"`
	NodeID     string            `json:"node_id"`
	History    []string          `json:"history,omitempty"`
	Pending    []effectWire      `json:"pending,omitempty"`
	Params     map[string]string `json:"params,omitempty"`
	Complete   bool              `json:"complete"`
}

func (i *Instance) Snapshot() Snapshot {
	wires := make([]effectWire, 0, len(i.Pending))
	for _, effect := range i.Pending {
		wires = append(wires, wireFromEffect(effect))
	}
	return Snapshot{
		ID:         i.ID,
		TemplateID: i.Template.ID,
		NodeID:     i.NodeID,
		History:    append([]string(nil), i.History...),
		Pending:    wires,
		Params:     copyParams(i.Params),
		Complete:   i.Complete,
	}
}

// Restore rebuilds an instance from a snapshot against a template registry.
func Restore(snap Snapshot, registry *Registry) (*Instance, error) {
	template, ok := registry.Template(snap.TemplateID)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", snap.TemplateID)
	}
	pending := make([]Effect, 0, len(snap.Pending))
	for _, wire := range snap.Pending {
		effect, err := wire.effect()
		if err != nil {
			return nil, err
		}
		pending = append(pending, effect)
	}
	params := snap.Params
	if params == nil {
		params = make(map[string]string)
	}
	return &Instance{
		ID:       snap.ID,
		Template: template,
		NodeID:   snap.NodeID,
		History:  append([]string(nil), snap.History...),
		Pending:  pending,
		Params:   params,
		Complete: snap.Complete,
	}, nil
}

func copyParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for key, value := range params {
		out[key] = value
	}
	return out
}
