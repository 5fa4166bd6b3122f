package encounter

import (
	"errors"
	"testing"

	"github.com/SFerenczy/FringeTactics-sub005/internal/rng"
)

// branchTemplate: entry with a conditional option, a plain option, and a
// checked option; one auto chain; one terminal node.
func branchTemplate(t *testing.T) *Template {
	t.Helper()
	template := &Template{
		ID:    "branch",
		Name:  "Branch Test",
		Tags:  []string{"generic"},
		Entry: "start",
		Nodes: map[string]*Node{
			"start": {
				ID:   "start",
				Text: "start",
				Options: []Option{
					{
						ID:         "gated",
						Text:       "needs flag",
						Conditions: []Condition{HasFlag{Flag: "secret"}},
						Outcome:    &Outcome{End: true},
					},
					{
						ID:      "plain",
						Text:    "go on",
						Outcome: &Outcome{Effects: []Effect{ResourceDelta{Resource: "credits", Amount: 50}}, NextNode: "middle"},
					},
					{
						ID:      "checked",
						Text:    "try it",
						Check:   &CheckDef{Stat: StatPilot, Difficulty: 5},
						Success: &Outcome{NextNode: "auto_a"},
						Failure: &Outcome{Effects: []Effect{ShipDamage{Amount: 5}}, End: true},
					},
				},
			},
			"middle": {
				ID:   "middle",
				Text: "middle",
				Options: []Option{
					{ID: "finish", Text: "done", Outcome: &Outcome{End: true}},
					{ID: "jump", Text: "jump", Outcome: &Outcome{Effects: []Effect{GotoNode{NodeID: "terminal"}}}},
				},
			},
			"auto_a": {
				ID:   "auto_a",
				Text: "auto a",
				Auto: &Outcome{Effects: []Effect{CrewExperience{Amount: 3}}, NextNode: "auto_b"},
			},
			"auto_b": {
				ID:   "auto_b",
				Text: "auto b",
				Auto: &Outcome{Effects: []Effect{SetFlag{Flag: "seen_b", Value: true}}, NextNode: "terminal"},
			},
			"terminal": {
				ID:   "terminal",
				Text: "the end",
			},
		},
	}
	if err := template.Validate(); err != nil {
		t.Fatalf("template invalid: %v", err)
	}
	return template
}

func runtimeContext(seed int64) *Context {
	return &Context{
		Crew:   []CrewSummary{{ID: "c1", Name: "Vale", Stats: StatBlock{Pilot: 10}}},
		Flags:  map[string]bool{},
		Stream: rng.NewStream(seed),
	}
}

func TestAvailableOptionsFiltersConditions(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	ctx := runtimeContext(1)

	visible := AvailableOptions(instance, ctx)
	if len(visible) != 2 {
		t.Fatalf("visible options = %d, want 2 (gated option hidden)", len(visible))
	}
	if visible[0].ID != "plain" || visible[1].ID != "checked" {
		t.Fatalf("unexpected option order: %s, %s", visible[0].ID, visible[1].ID)
	}

	ctx.Flags["secret"] = true
	visible = AvailableOptions(instance, ctx)
	if len(visible) != 3 || visible[0].ID != "gated" {
		t.Fatalf("expected gated option visible first, got %d options", len(visible))
	}
}

func TestSelectOptionInvalidIndexLeavesStateUntouched(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	ctx := runtimeContext(1)

	for _, index := range []int{-1, 2, 99} {
		result := SelectOption(instance, ctx, index)
		if result.OK {
			t.Fatalf("index %d unexpectedly accepted", index)
		}
		if !errors.Is(result.Err, ErrInvalidOption) {
			t.Fatalf("index %d error = %v, want ErrInvalidOption", index, result.Err)
		}
		if instance.NodeID != "start" || instance.Complete || len(instance.Pending) != 0 {
			t.Fatalf("instance mutated by invalid selection: %+v", instance)
		}
	}
}

func TestSelectOptionAccumulatesEffectsAndAdvances(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	ctx := runtimeContext(1)

	result := SelectOption(instance, ctx, 0) // "plain"
	if !result.OK {
		t.Fatalf("select failed: %v", result.Err)
	}
	if instance.NodeID != "middle" {
		t.Fatalf("node = %s, want middle", instance.NodeID)
	}
	if result.Complete {
		t.Fatalf("should not be complete yet")
	}
	pending := instance.PendingEffects()
	if len(pending) != 1 {
		t.Fatalf("pending effects = %d, want 1", len(pending))
	}
	if delta, ok := pending[0].(ResourceDelta); !ok || delta.Amount != 50 {
		t.Fatalf("unexpected pending effect %+v", pending[0])
	}
}

func TestSelectOptionCheckSuccessRunsAutoChain(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	// Pilot 10 against difficulty 5 succeeds on any die value.
	ctx := runtimeContext(3)

	result := SelectOption(instance, ctx, 1) // "checked"
	if !result.OK {
		t.Fatalf("select failed: %v", result.Err)
	}
	if result.Check == nil || !result.Check.Success {
		t.Fatalf("expected successful check, got %+v", result.Check)
	}
	// Success chains auto_a -> auto_b -> terminal, which has no options and
	// no transition, completing the encounter in one call.
	if !instance.Complete {
		t.Fatalf("expected instance complete after auto chain")
	}
	wantHistory := []string{"start", "auto_a", "auto_b", "terminal"}
	if len(instance.History) != len(wantHistory) {
		t.Fatalf("history = %v, want %v", instance.History, wantHistory)
	}
	for i, node := range wantHistory {
		if instance.History[i] != node {
			t.Fatalf("history = %v, want %v", instance.History, wantHistory)
		}
	}

	pending := instance.PendingEffects()
	if len(pending) != 2 {
		t.Fatalf("pending effects = %d, want 2 (auto chain effects)", len(pending))
	}
	if _, ok := pending[0].(CrewExperience); !ok {
		t.Fatalf("first pending effect = %T, want CrewExperience", pending[0])
	}
	if _, ok := pending[1].(SetFlag); !ok {
		t.Fatalf("second pending effect = %T, want SetFlag", pending[1])
	}
}

func TestGotoNodeEffectMovesWithoutPending(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	ctx := runtimeContext(1)

	if result := SelectOption(instance, ctx, 0); !result.OK {
		t.Fatalf("first select failed: %v", result.Err)
	}
	instance.DrainEffects()

	result := SelectOption(instance, ctx, 1) // "jump" via GotoNode
	if !result.OK {
		t.Fatalf("jump failed: %v", result.Err)
	}
	// terminal has no options and no auto, so the jump resolves to done.
	if !instance.Complete {
		t.Fatalf("expected completion at terminal node")
	}
	if len(instance.Pending) != 0 {
		t.Fatalf("flow-control effect leaked into pending: %+v", instance.Pending)
	}
}

func TestCurrentNodeNilOnceComplete(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	ctx := runtimeContext(1)

	SelectOption(instance, ctx, 0)
	result := SelectOption(instance, ctx, 0) // "finish"
	if !result.OK || !result.Complete {
		t.Fatalf("expected completion, got %+v", result)
	}
	if instance.CurrentNode() != nil {
		t.Fatalf("CurrentNode must be nil once complete")
	}
	if len(AvailableOptions(instance, ctx)) != 0 {
		t.Fatalf("no options may be produced after completion")
	}
	if followUp := SelectOption(instance, ctx, 0); followUp.OK {
		t.Fatalf("selection after completion must fail")
	}
}

func TestAutoTransitionCycleForceCompletes(t *testing.T) {
	template := &Template{
		ID:    "cycle",
		Name:  "Cycle",
		Entry: "a",
		Nodes: map[string]*Node{
			"a": {ID: "a", Text: "a", Options: []Option{
				{ID: "go", Text: "go", Outcome: &Outcome{NextNode: "b"}},
			}},
			"b": {ID: "b", Text: "b", Auto: &Outcome{NextNode: "c"}},
			"c": {ID: "c", Text: "c", Auto: &Outcome{NextNode: "b"}},
		},
	}
	if err := template.Validate(); err != nil {
		t.Fatalf("template invalid: %v", err)
	}

	instance := NewInstance(template)
	ctx := runtimeContext(1)
	result := SelectOption(instance, ctx, 0)
	if !result.OK {
		t.Fatalf("select failed: %v", result.Err)
	}
	if !instance.Complete {
		t.Fatalf("auto cycle must force-complete the instance")
	}
}

func TestRenderTextSubstitutesParams(t *testing.T) {
	template := branchTemplate(t)
	instance := NewInstance(template)
	instance.Params["npc"] = "Mira Vance"
	instance.Params["ship"] = "Rust Jackal"

	got := instance.RenderText("The {ship} hails; {npc} is aboard. {unknown} stays.")
	want := "The Rust Jackal hails; Mira Vance is aboard. {unknown} stays."
	if got != want {
		t.Fatalf("RenderText = %q, want %q", got, want)
	}
}

func TestTemplateValidateCatchesDanglingRefs(t *testing.T) {
	tests := []struct {
		name     string
		template *Template
	}{
		{
			name: "bad entry",
			template: &Template{ID: "t", Entry: "missing", Nodes: map[string]*Node{
				"a": {ID: "a", Text: "a"},
			}},
		},
		{
			name: "bad next node",
			template: &Template{ID: "t", Entry: "a", Nodes: map[string]*Node{
				"a": {ID: "a", Text: "a", Options: []Option{
					{ID: "o", Text: "o", Outcome: &Outcome{NextNode: "missing"}},
				}},
			}},
		},
		{
			name: "bad goto target",
			template: &Template{ID: "t", Entry: "a", Nodes: map[string]*Node{
				"a": {ID: "a", Text: "a", Options: []Option{
					{ID: "o", Text: "o", Outcome: &Outcome{Effects: []Effect{GotoNode{NodeID: "missing"}}}},
				}},
			}},
		},
		{
			name: "bad auto target",
			template: &Template{ID: "t", Entry: "a", Nodes: map[string]*Node{
				"a": {ID: "a", Text: "a", Auto: &Outcome{NextNode: "missing"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.template.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestBuiltInTemplatesValidate(t *testing.T) {
	templates := BuiltInTemplates()
	if len(templates) == 0 {
		t.Fatalf("expected built-in templates")
	}
	for _, template := range templates {
		if err := template.Validate(); err != nil {
			t.Fatalf("template %s invalid: %v", template.ID, err)
		}
	}
}
