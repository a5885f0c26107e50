// Package presets holds the list of common cron expressions offered as
// one-click starting points.
package presets

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crucial707/cronscope/internal/cron"
)

// Preset is a labelled expression. Labels holds translations keyed by locale
// name ("zh"); Label is the English fallback.
type Preset struct {
	Label      string            `yaml:"label"`
	Labels     map[string]string `yaml:"labels,omitempty"`
	Expression string            `yaml:"expression"`
}

// LabelFor returns the label in loc, falling back to Label.
func (p Preset) LabelFor(loc cron.Locale) string {
	if l, ok := p.Labels[loc.Name()]; ok && l != "" {
		return l
	}
	return p.Label
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

var builtin = []Preset{
	{Label: "Every minute", Labels: map[string]string{"zh": "每分钟"}, Expression: "* * * * *"},
	{Label: "Every hour", Labels: map[string]string{"zh": "每小时"}, Expression: "0 * * * *"},
	{Label: "Every day at midnight", Labels: map[string]string{"zh": "每天零点"}, Expression: "0 0 * * *"},
	{Label: "Every day at 9am", Labels: map[string]string{"zh": "每天早上9点"}, Expression: "0 9 * * *"},
	{Label: "Mondays at 9am", Labels: map[string]string{"zh": "每周一早上9点"}, Expression: "0 9 * * 1"},
	{Label: "First of the month at midnight", Labels: map[string]string{"zh": "每月1号零点"}, Expression: "0 0 1 * *"},
	{Label: "Weekdays at 9am", Labels: map[string]string{"zh": "工作日早上9点"}, Expression: "0 9 * * 1-5"},
	{Label: "Every 5 minutes", Labels: map[string]string{"zh": "每5分钟"}, Expression: "*/5 * * * *"},
	{Label: "Every 30 minutes", Labels: map[string]string{"zh": "每30分钟"}, Expression: "*/30 * * * *"},
	{Label: "Every day at 3am", Labels: map[string]string{"zh": "每天凌晨3点"}, Expression: "0 3 * * *"},
}

// Default returns a copy of the built-in presets.
func Default() []Preset {
	out := make([]Preset, len(builtin))
	copy(out, builtin)
	return out
}

// Load reads presets from a YAML file. An empty path returns Default.
func Load(path string) ([]Preset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("presets %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes a YAML document of the form
//
//	presets:
//	  - label: Weekdays at 9am
//	    labels: {zh: 工作日早上9点}
//	    expression: "0 9 * * 1-5"
//
// Every expression must parse.
func Parse(data []byte) ([]Preset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, errors.New("no presets defined")
	}

	for i, p := range f.Presets {
		if p.Label == "" {
			return nil, fmt.Errorf("preset %d: label is required", i+1)
		}
		expr, err := cron.Parse(p.Expression)
		if err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i+1, p.Label, err)
		}
		f.Presets[i].Expression = expr.String()
	}
	return f.Presets, nil
}
