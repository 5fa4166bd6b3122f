package encounter

import "fmt"

// Template is a reusable, immutable encounter definition. Templates never
// mutate at runtime; all per-playthrough state lives on the Instance.
type Template struct {
	ID    string
	Name  string
	Tags  []string
	Entry string
	Nodes map[string]*Node
}

func (t *Template) HasTag(tag string) bool {
	if t == nil {
		return false
	}
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

func (t *Template) Node(id string) (*Node, bool) {
	node, ok := t.Nodes[id]
	return node, ok
}

// Node is one step of an encounter: narrative text plus either player options
// or an automatic transition for pure narrative beats.
type Node struct {
	ID      string
	Text    string
	Options []Option
	Auto    *Outcome
}

// Option is one selectable choice on a node. All Conditions must hold for the
// option to be visible. If Check is set, the Success/Failure outcome is used
// by check result, falling back to Outcome when the specific branch is absent;
// otherwise Outcome applies directly.
type Option struct {
	ID         string
	Text       string
	Conditions []Condition
	Check      *CheckDef
	Outcome    *Outcome
	Success    *Outcome
	Failure    *Outcome
}

// Outcome is an ordered effect list plus where the encounter goes next.
type Outcome struct {
	Effects  []Effect
	NextNode string
	End      bool
}

// Validate catches authoring defects: a missing entry node or any dangling
// node reference. Runtime code assumes validated templates.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template id must not be empty")
	}
	if len(t.Nodes) == 0 {
		return fmt.Errorf("template %s has no nodes", t.ID)
	}
	if _, ok := t.Nodes[t.Entry]; !ok {
		return fmt.Errorf("template %s entry node %q not found", t.ID, t.Entry)
	}
	for nodeID, node := range t.Nodes {
		if node == nil {
			return fmt.Errorf("template %s node %q is nil", t.ID, nodeID)
		}
		if node.ID != nodeID {
			return fmt.Errorf("template %s node %q keyed under %q", t.ID, node.ID, nodeID)
		}
		if err := t.validateOutcome(nodeID, "auto", node.Auto); err != nil {
			return err
		}
		for _, opt := range node.Options {
			for _, outcome := range []*Outcome{opt.Outcome, opt.Success, opt.Failure} {
				if err := t.validateOutcome(nodeID, opt.ID, outcome); err != nil {
					return err
				}
			}
			if opt.Check == nil && opt.Outcome == nil {
				return fmt.Errorf("template %s node %s option %s has no outcome", t.ID, nodeID, opt.ID)
			}
			if opt.Check != nil && opt.Outcome == nil && (opt.Success == nil || opt.Failure == nil) {
				return fmt.Errorf("template %s node %s option %s check lacks a fallback outcome", t.ID, nodeID, opt.ID)
			}
		}
	}
	return nil
}

func (t *Template) validateOutcome(nodeID, ref string, outcome *Outcome) error {
	if outcome == nil {
		return nil
	}
	if outcome.NextNode != "" {
		if _, ok := t.Nodes[outcome.NextNode]; !ok {
			return fmt.Errorf("template %s node %s (%s) references unknown node %q", t.ID, nodeID, ref, outcome.NextNode)
		}
	}
	for _, effect := range outcome.Effects {
		if jump, ok := effect.(GotoNode); ok {
			if _, exists := t.Nodes[jump.NodeID]; !exists {
				return fmt.Errorf("template %s node %s (%s) jump to unknown node %q", t.ID, nodeID, ref, jump.NodeID)
			}
		}
	}
	return nil
}
