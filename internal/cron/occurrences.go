package cron

import "time"

// HorizonYears is how far past the starting instant NextOccurrences searches.
const HorizonYears = 1

// NextOccurrences returns up to count times strictly after from, at whole
// minutes in local time, that match expr. It walks one minute at a time and
// gives up one year after from, so an expression that never fires (such as
// "0 0 31 2 *") yields an empty slice rather than an error.
func NextOccurrences(expr Expression, count int, from time.Time) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}

	m := newMatcher(expr)
	from = from.In(time.Local)
	limit := from.AddDate(HorizonYears, 0, 0)
	cursor := from.Truncate(time.Minute)

	out := make([]time.Time, 0, min(count, 64))
	for len(out) < count && cursor.Before(limit) {
		cursor = cursor.Add(time.Minute)
		if m.matches(cursor) {
			out = append(out, cursor)
		}
	}
	return out
}
