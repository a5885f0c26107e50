// Package crosscheck computes run times under standard cron semantics, where
// a restricted day-of-month and a restricted day-of-week are ORed, so they can
// be shown next to the engine's own (ANDed) occurrences.
package crosscheck

import (
	"fmt"
	"time"

	robfig "github.com/robfig/cron/v3"

	"github.com/crucial707/cronscope/internal/cron"
)

var parser = robfig.NewParser(robfig.Minute | robfig.Hour | robfig.Dom | robfig.Month | robfig.Dow)

// Standard returns up to count run times after from for expr, computed by
// robfig/cron in local time and bounded by the same one-year horizon as
// cron.NextOccurrences.
func Standard(expr cron.Expression, count int, from time.Time) ([]time.Time, error) {
	sched, err := parser.Parse(expr.String())
	if err != nil {
		return nil, fmt.Errorf("crosscheck: parse %q: %w", expr.String(), err)
	}

	from = from.In(time.Local)
	limit := from.AddDate(cron.HorizonYears, 0, 0)

	out := make([]time.Time, 0, max(count, 0))
	for t := from; len(out) < count; {
		t = sched.Next(t)
		if t.IsZero() || !t.Before(limit) {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

// Divergent returns the standard-semantics run times when expr is affected by
// the day-of-month/day-of-week difference, and nil otherwise.
func Divergent(expr cron.Expression, count int, from time.Time) []time.Time {
	if !expr.DaysDivergent() {
		return nil
	}
	out, err := Standard(expr, count, from)
	if err != nil {
		return nil
	}
	return out
}
