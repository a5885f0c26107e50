package models

import (
	"fmt"
	"time"

	"github.com/crucial707/cronscope/internal/cron"
)

// FieldView is one parsed field of an expression.
type FieldView struct {
	Name   string `json:"name"`
	Spec   string `json:"spec"`
	Kind   string `json:"kind"`
	Values []int  `json:"values"`
}

// Explanation is the response body for an explained expression.
type Explanation struct {
	Expression  string      `json:"expression"`
	Valid       bool        `json:"valid"`
	Locale      string      `json:"locale"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldView `json:"fields,omitempty"`
	Occurrences []time.Time `json:"occurrences"`
	// Message is set when a valid expression has no occurrence within the horizon.
	Message string `json:"message,omitempty"`

	// DaysDivergent is true when both day fields are restricted; StandardOccurrences
	// then lists what standard cron (day-of-month OR day-of-week) would run.
	DaysDivergent       bool        `json:"days_divergent"`
	StandardOccurrences []time.Time `json:"standard_occurrences,omitempty"`

	Error        string `json:"error,omitempty"`
	ErrorField   string `json:"error_field,omitempty"`
	ErrorSegment string `json:"error_segment,omitempty"`
}

// NewFieldView builds the view of field f of expr.
func NewFieldView(f cron.Field, spec cron.Spec) FieldView {
	return FieldView{
		Name:   f.String(),
		Spec:   spec.Raw,
		Kind:   spec.Kind.String(),
		Values: spec.Resolve().Values(),
	}
}

// NewExplanation converts an engine result. standard is the output of
// crosscheck.Divergent and may be nil.
func NewExplanation(x cron.Explanation, loc cron.Locale, standard []time.Time) Explanation {
	out := Explanation{
		Expression:  x.Input,
		Locale:      loc.Name(),
		Occurrences: []time.Time{},
	}
	if !x.Valid() {
		out.Error = x.Err.Error()
		if fe, ok := x.FieldError(); ok {
			out.ErrorField = fe.Field
			out.ErrorSegment = fe.Segment
		}
		return out
	}

	out.Valid = true
	out.Expression = x.Expression.String()
	out.Description = x.Description
	out.Occurrences = x.Occurrences
	if len(x.Occurrences) == 0 {
		out.Message = loc.NoOccurrences
	}
	for _, f := range cron.Fields() {
		out.Fields = append(out.Fields, NewFieldView(f, x.Expression.Spec(f)))
	}
	out.DaysDivergent = x.Expression.DaysDivergent()
	out.StandardOccurrences = standard
	return out
}

// FormatOccurrence renders t as date, weekday and time, e.g.
// "2026-10-19 Monday 09:00".
func FormatOccurrence(t time.Time, loc cron.Locale) string {
	weekday := fmt.Sprintf(loc.Weekday, loc.DayName(int(t.Weekday())))
	return fmt.Sprintf("%s %s %s", t.Format("2006-01-02"), weekday, t.Format("15:04"))
}
