package encounter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML authoring schema for encounter templates. A content file holds a list
// of templates; ParseTemplates validates each one and rejects the whole file
// on the first defect, so a bad reference never reaches the runtime.

type templateFile struct {
	Templates []templateDoc `yaml:"templates"`
}

type templateDoc struct {
	ID    string              `yaml:"id"`
	Name  string              `yaml:"name"`
	Tags  []string            `yaml:"tags,omitempty"`
	Entry string              `yaml:"entry"`
	Nodes map[string]nodeDoc  `yaml:"nodes"`
}

type nodeDoc struct {
	Text    string      `yaml:"text"`
	Options []optionDoc `yaml:"options,omitempty"`
	Auto    *outcomeDoc `yaml:"auto,omitempty"`
}

type optionDoc struct {
	ID         string          `yaml:"id"`
	Text       string          `yaml:"text"`
	Conditions []conditionWire `yaml:"conditions,omitempty"`
	Check      *CheckDef       `yaml:"check,omitempty"`
	Outcome    *outcomeDoc     `yaml:"outcome,omitempty"`
	Success    *outcomeDoc     `yaml:"success,omitempty"`
	Failure    *outcomeDoc     `yaml:"failure,omitempty"`
}

type outcomeDoc struct {
	Effects  []effectWire `yaml:"effects,omitempty"`
	NextNode string       `yaml:"next,omitempty"`
	End      bool         `yaml:"end,omitempty"`
}

// LoadTemplates reads one YAML content file and returns its validated
// templates.
func LoadTemplates(path string) ([]*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	templates, err := ParseTemplates(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return templates, nil
}

// ParseTemplates decodes and validates YAML template content.
func ParseTemplates(data []byte) ([]*Template, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	templates := make([]*Template, 0, len(file.Templates))
	for _, doc := range file.Templates {
		template, err := doc.template()
		if err != nil {
			return nil, err
		}
		if err := template.Validate(); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func (d templateDoc) template() (*Template, error) {
	nodes := make(map[string]*Node, len(d.Nodes))
	for nodeID, doc := range d.Nodes {
		node, err := doc.node(nodeID)
		if err != nil {
			return nil, fmt.Errorf("template %s node %s: %w", d.ID, nodeID, err)
		}
		nodes[nodeID] = node
	}
	return &Template{
		ID:    d.ID,
		Name:  d.Name,
		Tags:  d.Tags,
		Entry: d.Entry,
		Nodes: nodes,
	}, nil
}

func (d nodeDoc) node(id string) (*Node, error) {
	auto, err := d.Auto.outcome()
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(d.Options))
	for _, optDoc := range d.Options {
		opt, err := optDoc.option()
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", optDoc.ID, err)
		}
		options = append(options, opt)
	}
	return &Node{ID: id, Text: d.Text, Options: options, Auto: auto}, nil
}

func (d optionDoc) option() (Option, error) {
	conditions := make([]Condition, 0, len(d.Conditions))
	for _, wire := range d.Conditions {
		cond, err := wire.condition()
		if err != nil {
			return Option{}, err
		}
		conditions = append(conditions, cond)
	}
	outcome, err := d.Outcome.outcome()
	if err != nil {
		return Option{}, err
	}
	success, err := d.Success.outcome()
	if err != nil {
		return Option{}, err
	}
	failure, err := d.Failure.outcome()
	if err != nil {
		return Option{}, err
	}
	return Option{
		ID:         d.ID,
		Text:       d.Text,
		Conditions: conditions,
		Check:      d.Check,
		Outcome:    outcome,
		Success:    success,
		Failure:    failure,
	}, nil
}

func (d *outcomeDoc) outcome() (*Outcome, error) {
	if d == nil {
		return nil, nil
	}
	effects := make([]Effect, 0, len(d.Effects))
	for _, wire := range d.Effects {
		effect, err := wire.effect()
		if err != nil {
			return nil, err
		}
		effects = append(effects, effect)
	}
	return &Outcome{Effects: effects, NextNode: d.NextNode, End: d.End}, nil
}
