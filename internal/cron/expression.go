package cron

import (
	"fmt"
	"strings"
	"time"
)

// Expression is a parsed 5-field cron expression. The zero value is not
// valid; use Parse.
type Expression struct {
	fields [fieldCount]string
	specs  [fieldCount]Spec
}

// Parse splits raw on whitespace and classifies each of the five fields.
// Every failure wraps ErrInvalidExpression; field failures also carry an
// *InvalidFieldError.
func Parse(raw string) (Expression, error) {
	tokens := strings.Fields(raw)
	if len(tokens) != fieldCount {
		return Expression{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidExpression, fieldCount, len(tokens))
	}

	var e Expression
	for i, tok := range tokens {
		spec, err := classify(tok, domains[i], fieldNames[i])
		if err != nil {
			return Expression{}, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
		}
		e.fields[i] = tok
		e.specs[i] = spec
	}
	return e, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(raw string) Expression {
	e, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// String joins the five fields with single spaces.
func (e Expression) String() string {
	return strings.Join(e.fields[:], " ")
}

// Field returns the raw text of f.
func (e Expression) Field(f Field) string {
	return e.fields[f]
}

// FieldStrings returns the raw text of all five fields in order.
func (e Expression) FieldStrings() [5]string {
	return e.fields
}

// Spec returns the classification of f.
func (e Expression) Spec(f Field) Spec {
	return e.specs[f]
}

// Resolve returns the values f matches.
func (e Expression) Resolve(f Field) ResolvedField {
	return e.specs[f].Resolve()
}

// DaysDivergent reports whether both day-of-month and day-of-week are
// restricted. Such expressions fire only on days matching both fields, where
// standard cron fires on days matching either.
func (e Expression) DaysDivergent() bool {
	return !e.specs[DayOfMonth].IsWildcard() && !e.specs[DayOfWeek].IsWildcard()
}

// WithField returns a copy of e with field f replaced by value.
func (e Expression) WithField(f Field, value string) (Expression, error) {
	if !f.valid() {
		return Expression{}, fmt.Errorf("unknown cron field %d", int(f))
	}
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return Expression{}, fmt.Errorf("%w: %w", ErrInvalidExpression,
			fieldError(fieldNames[f], value, "must be a single non-empty token"))
	}
	fields := e.fields
	fields[f] = value
	return Parse(strings.Join(fields[:], " "))
}

// Matches reports whether t, read in its own location, satisfies every field.
func (e Expression) Matches(t time.Time) bool {
	return newMatcher(e).matches(t)
}

type matcher struct {
	minutes, hours, days, months, weekdays ResolvedField
	checkDays, checkWeekdays               bool
}

func newMatcher(e Expression) matcher {
	return matcher{
		minutes:       e.Resolve(Minute),
		hours:         e.Resolve(Hour),
		days:          e.Resolve(DayOfMonth),
		months:        e.Resolve(Month),
		weekdays:      e.Resolve(DayOfWeek),
		checkDays:     !e.specs[DayOfMonth].IsWildcard(),
		checkWeekdays: !e.specs[DayOfWeek].IsWildcard(),
	}
}

func (m matcher) matches(t time.Time) bool {
	return m.minutes.Contains(t.Minute()) &&
		m.hours.Contains(t.Hour()) &&
		(!m.checkDays || m.days.Contains(t.Day())) &&
		m.months.Contains(int(t.Month())) &&
		(!m.checkWeekdays || m.weekdays.Contains(int(t.Weekday())))
}
