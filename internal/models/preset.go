package models

import (
	"github.com/crucial707/cronscope/internal/cron"
	"github.com/crucial707/cronscope/internal/presets"
)

// Preset is a preset as served to clients, with its label in one locale.
type Preset struct {
	Label       string `json:"label"`
	Expression  string `json:"expression"`
	Description string `json:"description"`
}

// NewPresets localizes list. Expressions in list have already been validated.
func NewPresets(list []presets.Preset, loc cron.Locale) []Preset {
	out := make([]Preset, 0, len(list))
	for _, p := range list {
		desc := ""
		if expr, err := cron.Parse(p.Expression); err == nil {
			desc = cron.DescribeIn(expr, loc)
		}
		out = append(out, Preset{
			Label:       p.LabelFor(loc),
			Expression:  p.Expression,
			Description: desc,
		})
	}
	return out
}
