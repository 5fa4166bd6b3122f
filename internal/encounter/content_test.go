package encounter

import (
	"testing"

	"github.com/SFerenczy/FringeTactics-sub005/internal/rng"
)

const sampleContent = `
templates:
  - id: toll_gate
    name: Toll Gate
    tags: [patrol]
    entry: stop
    nodes:
      stop:
        text: "A toll barge blocks the lane near {location}."
        options:
          - id: pay
            text: "Pay the toll."
            conditions:
              - type: min_resource
                target: credits
                amount: 50
            outcome:
              effects:
                - type: resource
                  target: credits
                  amount: -50
              end: true
          - id: argue
            text: "Argue your way through."
            check:
              stat: savvy
              difficulty: 11
            success:
              end: true
            failure:
              effects:
                - type: time_delay
                  amount: 1
              next: waved_off
          - id: sneak
            text: "Drift past with transponder dark."
            conditions:
              - type: not
                child:
                  type: has_flag
                  target: coalition_fugitive
            check:
              stat: pilot
              difficulty: 13
            success:
              end: true
            failure:
              effects:
                - type: reputation
                  target: coalition
                  amount: -2
              end: true
      waved_off:
        text: "They wave you to the back of the queue."
        auto:
          end: true
`

func TestParseTemplates(t *testing.T) {
	templates, err := ParseTemplates([]byte(sampleContent))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("templates = %d, want 1", len(templates))
	}

	template := templates[0]
	if template.ID != "toll_gate" || template.Entry != "stop" {
		t.Fatalf("unexpected template header: %+v", template)
	}
	stop, ok := template.Node("stop")
	if !ok || len(stop.Options) != 3 {
		t.Fatalf("stop node malformed")
	}

	pay := stop.Options[0]
	if len(pay.Conditions) != 1 {
		t.Fatalf("pay conditions = %d, want 1", len(pay.Conditions))
	}
	if cond, ok := pay.Conditions[0].(MinResource); !ok || cond.Resource != "credits" || cond.Amount != 50 {
		t.Fatalf("pay condition = %+v", pay.Conditions[0])
	}
	if len(pay.Outcome.Effects) != 1 {
		t.Fatalf("pay effects = %d, want 1", len(pay.Outcome.Effects))
	}
	if delta, ok := pay.Outcome.Effects[0].(ResourceDelta); !ok || delta.Amount != -50 {
		t.Fatalf("pay effect = %+v", pay.Outcome.Effects[0])
	}

	argue := stop.Options[1]
	if argue.Check == nil || argue.Check.Stat != StatSavvy || argue.Check.Difficulty != 11 {
		t.Fatalf("argue check = %+v", argue.Check)
	}
	if argue.Failure == nil || argue.Failure.NextNode != "waved_off" {
		t.Fatalf("argue failure = %+v", argue.Failure)
	}

	sneak := stop.Options[2]
	negated, ok := sneak.Conditions[0].(Not)
	if !ok {
		t.Fatalf("sneak condition = %T, want Not", sneak.Conditions[0])
	}
	if child, ok := negated.Child.(HasFlag); !ok || child.Flag != "coalition_fugitive" {
		t.Fatalf("negated child = %+v", negated.Child)
	}
}

func TestParsedTemplateRuns(t *testing.T) {
	templates, err := ParseTemplates([]byte(sampleContent))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	instance := NewInstance(templates[0])
	ctx := &Context{
		Resources: map[string]int{"credits": 100},
		Crew:      []CrewSummary{{ID: "c1", Stats: StatBlock{Savvy: 3, Pilot: 3}}},
		Stream:    rng.NewStream(5),
	}

	visible := AvailableOptions(instance, ctx)
	if len(visible) != 3 {
		t.Fatalf("visible = %d, want 3", len(visible))
	}

	result := SelectOption(instance, ctx, 0) // pay
	if !result.OK || !result.Complete {
		t.Fatalf("pay should complete: %+v", result)
	}
	drained := instance.DrainEffects()
	if len(drained) != 1 {
		t.Fatalf("drained = %d, want 1", len(drained))
	}
}

func TestParseTemplatesRejectsDanglingReference(t *testing.T) {
	bad := `
templates:
  - id: broken
    name: Broken
    entry: start
    nodes:
      start:
        text: "start"
        options:
          - id: go
            text: "go"
            outcome:
              next: nowhere
`
	if _, err := ParseTemplates([]byte(bad)); err == nil {
		t.Fatalf("expected validation error for dangling node reference")
	}
}

func TestParseTemplatesRejectsUnknownEffectType(t *testing.T) {
	bad := `
templates:
  - id: broken
    name: Broken
    entry: start
    nodes:
      start:
        text: "start"
        options:
          - id: go
            text: "go"
            outcome:
              effects:
                - type: summon_dragon
              end: true
`
	if _, err := ParseTemplates([]byte(bad)); err == nil {
		t.Fatalf("expected error for unknown effect type")
	}
}

func TestInstanceSnapshotRoundTrip(t *testing.T) {
	registry := NewRegistry()
	for _, template := range BuiltInTemplates() {
		if err := registry.Register(template); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	template, _ := registry.Template("pirate_ambush")
	instance := NewInstance(template)
	instance.Params["npc"] = "Mira Vance"
	instance.Pending = []Effect{
		ResourceDelta{Resource: "credits", Amount: -200},
		SetFlag{Flag: "paid_off_pirates", Value: true},
		CargoDelta{Descriptor: "plundered freight", Value: -150},
	}
	instance.NodeID = "caught"
	instance.History = append(instance.History, "caught")

	restored, err := Restore(instance.Snapshot(), registry)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.NodeID != "caught" || restored.Template.ID != "pirate_ambush" {
		t.Fatalf("restored cursor wrong: %+v", restored)
	}
	if restored.Params["npc"] != "Mira Vance" {
		t.Fatalf("params lost in round trip")
	}
	if len(restored.Pending) != 3 {
		t.Fatalf("pending = %d, want 3", len(restored.Pending))
	}
	if delta, ok := restored.Pending[0].(ResourceDelta); !ok || delta.Amount != -200 {
		t.Fatalf("pending[0] = %+v", restored.Pending[0])
	}
	if flag, ok := restored.Pending[1].(SetFlag); !ok || !flag.Value {
		t.Fatalf("pending[1] = %+v", restored.Pending[1])
	}
}
