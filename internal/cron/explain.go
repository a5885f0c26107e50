package cron

import (
	"errors"
	"time"
)

// Explanation is the outcome of Explain. When Err is set, Expression,
// Description and Occurrences are all empty.
type Explanation struct {
	Input       string
	Expression  Expression
	Description string
	Occurrences []time.Time
	Err         error
}

// Valid reports whether the input parsed.
func (x Explanation) Valid() bool { return x.Err == nil }

// FieldError returns the failing field segment, if the input failed on one.
func (x Explanation) FieldError() (*InvalidFieldError, bool) {
	var fe *InvalidFieldError
	if errors.As(x.Err, &fe) {
		return fe, true
	}
	return nil, false
}

// Explain parses raw, describes it in loc and lists up to count occurrences
// after from.
func Explain(raw string, count int, from time.Time, loc Locale) Explanation {
	expr, err := Parse(raw)
	if err != nil {
		return Explanation{Input: raw, Err: err}
	}
	return Explanation{
		Input:       raw,
		Expression:  expr,
		Description: DescribeIn(expr, loc),
		Occurrences: NextOccurrences(expr, count, from),
	}
}
