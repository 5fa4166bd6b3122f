package encounter

import "fmt"

// maxAutoHops bounds auto-transition chaining so a misauthored template that
// cycles through automatic nodes cannot spin forever. On trip, the instance
// is force-completed.
const maxAutoHops = 32

// StepResult reports the outcome of one SelectOption call.
type StepResult struct {
	OK       bool
	Err      error
	Check    *CheckResult
	Node     *Node
	Complete bool
}

// ErrInvalidOption is returned (wrapped with detail) when an option index
// falls outside the currently visible option list.
var ErrInvalidOption = fmt.Errorf("invalid option index")

// AvailableOptions returns the options on the current node whose conditions
// all hold in ctx, in authored order. Options with no conditions are always
// visible. Indices into the returned slice are what SelectOption expects, and
// are only stable for one filtering pass.
func AvailableOptions(instance *Instance, ctx *Context) []Option {
	node := instance.CurrentNode()
	if node == nil {
		return nil
	}
	visible := make([]Option, 0, len(node.Options))
	for _, opt := range node.Options {
		if allHold(opt.Conditions, ctx) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// SelectOption applies the player's choice, given as an index into the list
// AvailableOptions returned for the same context. An out-of-range index
// leaves the instance untouched and reports a validation failure. On success
// the resolved outcome's effects are accumulated, the node advances, and any
// chain of automatic transitions settles before the call returns.
func SelectOption(instance *Instance, ctx *Context, index int) StepResult {
	if instance.Complete {
		return StepResult{Err: fmt.Errorf("encounter already complete")}
	}
	visible := AvailableOptions(instance, ctx)
	if index < 0 || index >= len(visible) {
		return StepResult{Err: fmt.Errorf("%w: %d of %d", ErrInvalidOption, index, len(visible))}
	}
	option := visible[index]

	var checkResult *CheckResult
	outcome := option.Outcome
	if option.Check != nil {
		result := option.Check.Resolve(ctx)
		checkResult = &result
		if result.Success {
			if option.Success != nil {
				outcome = option.Success
			}
		} else {
			if option.Failure != nil {
				outcome = option.Failure
			}
		}
	}

	applyOutcome(instance, outcome)
	settle(instance)

	return StepResult{
		OK:       true,
		Check:    checkResult,
		Node:     instance.CurrentNode(),
		Complete: instance.Complete,
	}
}

// applyOutcome accumulates an outcome's effects and applies its transition
// semantics. Flow-control effects mutate the instance directly; everything
// else lands on the pending list for the external applier.
func applyOutcome(instance *Instance, outcome *Outcome) {
	if outcome == nil {
		return
	}
	for _, effect := range outcome.Effects {
		switch e := effect.(type) {
		case GotoNode:
			instance.moveTo(e.NodeID)
		case EndEncounter:
			instance.Complete = true
		default:
			instance.Pending = append(instance.Pending, effect)
		}
	}
	if instance.Complete {
		return
	}
	if outcome.NextNode != "" {
		instance.moveTo(outcome.NextNode)
		return
	}
	if outcome.End {
		instance.Complete = true
	}
}

// settle runs the instance forward through automatic transitions and detects
// terminal nodes. A node with no options and no auto transition completes the
// encounter; an auto chain longer than maxAutoHops (or one that revisits a
// node within the chain) is treated as an authoring bug and force-completed.
func settle(instance *Instance) {
	visited := make(map[string]bool)
	for hops := 0; !instance.Complete; hops++ {
		node := instance.CurrentNode()
		if node == nil {
			instance.Complete = true
			return
		}
		if node.Auto == nil {
			if len(node.Options) == 0 {
				instance.Complete = true
			}
			return
		}
		if hops >= maxAutoHops || visited[node.ID] {
			instance.Complete = true
			return
		}
		visited[node.ID] = true
		applyOutcome(instance, node.Auto)
	}
}

func (i *Instance) moveTo(nodeID string) {
	i.NodeID = nodeID
	i.History = append(i.History, nodeID)
}
