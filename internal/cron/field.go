package cron

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Field identifies one of the five positions of a cron expression.
type Field int

const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

const fieldCount = 5

// Domain is the inclusive range of values a field accepts.
type Domain struct {
	Min int
	Max int
}

var (
	fieldNames = [fieldCount]string{"minute", "hour", "day-of-month", "month", "day-of-week"}

	domains = [fieldCount]Domain{
		{Min: 0, Max: 59},
		{Min: 0, Max: 23},
		{Min: 1, Max: 31},
		{Min: 1, Max: 12},
		{Min: 0, Max: 6},
	}

	// fieldAliases maps lower-cased names with '-' and '_' removed.
	fieldAliases = map[string]Field{
		"minute":     Minute,
		"min":        Minute,
		"hour":       Hour,
		"dayofmonth": DayOfMonth,
		"dom":        DayOfMonth,
		"day":        DayOfMonth,
		"month":      Month,
		"dayofweek":  DayOfWeek,
		"dow":        DayOfWeek,
		"weekday":    DayOfWeek,
	}
)

// Fields returns the five fields in expression order.
func Fields() []Field {
	return []Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

func (f Field) valid() bool { return f >= Minute && f <= DayOfWeek }

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Domain returns the accepted value range of f.
func (f Field) Domain() Domain {
	if !f.valid() {
		return Domain{}
	}
	return domains[f]
}

// ParseFieldName resolves "minute", "day-of-month", "dow", "dayOfWeek", ...
func ParseFieldName(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown cron field %q", name)
}

// Kind classifies a field term.
type Kind int

const (
	KindWildcard   Kind = iota // *
	KindStep                   // */n
	KindRange                  // a-b
	KindRangeStep              // a-b/n
	KindSingleStep             // a/n, every n-th value from a to the domain max
	KindSingle                 // a
	KindList                   // two or more comma-separated terms
)

var kindNames = [...]string{"wildcard", "step", "range", "range-step", "single-step", "single", "list"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Term is one comma-separated segment of a field, expanded to the inclusive
// range [Start, End] walked with Step.
type Term struct {
	Kind  Kind
	Start int
	End   int
	Step  int
}

// Spec is a classified field. Kind is the term's kind for single-term fields
// and KindList otherwise.
type Spec struct {
	Raw   string
	Kind  Kind
	Terms []Term
}

// IsWildcard reports whether the field is a bare "*".
func (s Spec) IsWildcard() bool { return s.Kind == KindWildcard }

// single reports whether the field is exactly the value v.
func (s Spec) single(v int) bool {
	return s.Kind == KindSingle && s.Terms[0].Start == v
}

// Resolve expands the spec into the set of values it matches.
func (s Spec) Resolve() ResolvedField {
	var r ResolvedField
	for _, t := range s.Terms {
		for v := t.Start; v <= t.End; v += t.Step {
			r.mask |= 1 << uint(v)
		}
	}
	return r
}

// ResolvedField is the set of values a field matches. Domains never exceed
// 0-63, so the set is a bitmask.
type ResolvedField struct {
	mask uint64
}

// Contains reports whether v is in the set.
func (r ResolvedField) Contains(v int) bool {
	if v < 0 || v > 63 {
		return false
	}
	return r.mask&(1<<uint(v)) != 0
}

// Len returns the number of values in the set.
func (r ResolvedField) Len() int { return bits.OnesCount64(r.mask) }

// Values returns the set in ascending order.
func (r ResolvedField) Values() []int {
	out := make([]int, 0, r.Len())
	for m := r.mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}
	return out
}

// Classify parses raw as a spec for field f.
func Classify(f Field, raw string) (Spec, error) {
	if !f.valid() {
		return Spec{}, fmt.Errorf("unknown cron field %d", int(f))
	}
	return classify(raw, domains[f], fieldNames[f])
}

// ParseField returns the ascending, duplicate-free values raw matches within
// [min, max].
func ParseField(raw string, min, max int) ([]int, error) {
	if min < 0 || max > 63 || min > max {
		return nil, fmt.Errorf("unsupported field domain [%d, %d]", min, max)
	}
	spec, err := classify(raw, Domain{Min: min, Max: max}, "")
	if err != nil {
		return nil, err
	}
	return spec.Resolve().Values(), nil
}

func classify(raw string, d Domain, name string) (Spec, error) {
	segments := strings.Split(raw, ",")
	terms := make([]Term, 0, len(segments))
	for _, seg := range segments {
		t, err := parseTerm(seg, d, name)
		if err != nil {
			return Spec{}, err
		}
		terms = append(terms, t)
	}

	kind := KindList
	if len(terms) == 1 {
		kind = terms[0].Kind
	}
	return Spec{Raw: raw, Kind: kind, Terms: terms}, nil
}

func parseTerm(seg string, d Domain, name string) (Term, error) {
	if seg == "" {
		return Term{}, fieldError(name, seg, "empty segment")
	}

	rangePart, stepPart, hasStep := strings.Cut(seg, "/")
	step := 1
	if hasStep {
		n, err := atoi(stepPart)
		if err != nil {
			return Term{}, fieldError(name, seg, "step %q is not a number", stepPart)
		}
		if n <= 0 {
			return Term{}, fieldError(name, seg, "step must be positive, got %d", n)
		}
		step = n
	}

	if rangePart == "*" {
		kind := KindWildcard
		if hasStep {
			kind = KindStep
		}
		return Term{Kind: kind, Start: d.Min, End: d.Max, Step: step}, nil
	}

	if lo, hi, isRange := strings.Cut(rangePart, "-"); isRange {
		start, err := parseValue(lo, d, name, seg)
		if err != nil {
			return Term{}, err
		}
		end, err := parseValue(hi, d, name, seg)
		if err != nil {
			return Term{}, err
		}
		if start > end {
			return Term{}, fieldError(name, seg, "range start %d is after end %d", start, end)
		}
		kind := KindRange
		if hasStep {
			kind = KindRangeStep
		}
		return Term{Kind: kind, Start: start, End: end, Step: step}, nil
	}

	v, err := parseValue(rangePart, d, name, seg)
	if err != nil {
		return Term{}, err
	}
	if hasStep {
		return Term{Kind: KindSingleStep, Start: v, End: d.Max, Step: step}, nil
	}
	return Term{Kind: KindSingle, Start: v, End: v, Step: 1}, nil
}

func parseValue(s string, d Domain, name, seg string) (int, error) {
	v, err := atoi(s)
	if err != nil {
		return 0, fieldError(name, seg, "%q is not a number", s)
	}
	if v < d.Min || v > d.Max {
		return 0, fieldError(name, seg, "value %d out of range [%d, %d]", v, d.Min, d.Max)
	}
	return v, nil
}

// atoi accepts only ASCII digits; strconv.Atoi alone would let "+5" through.
func atoi(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
