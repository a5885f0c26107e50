package cron

import (
	"fmt"
	"slices"
	"strings"
)

var weekdaySet = []int{1, 2, 3, 4, 5}

// Describe renders expr as an English sentence.
func Describe(expr Expression) string {
	return DescribeIn(expr, English)
}

// DescribeIn renders expr in loc. The time clause comes first, then the day
// clause (day-of-week wins over day-of-month), then the month clause.
func DescribeIn(expr Expression, loc Locale) string {
	clauses := []string{describeTime(expr, loc)}

	dow, dom, month := expr.Spec(DayOfWeek), expr.Spec(DayOfMonth), expr.Spec(Month)
	switch {
	case !dow.IsWildcard():
		days := dow.Resolve().Values()
		if slices.Equal(days, weekdaySet) {
			clauses = append(clauses, loc.Weekdays)
		} else {
			names := make([]string, len(days))
			for i, d := range days {
				names[i] = loc.DayName(d)
			}
			clauses = append(clauses, fmt.Sprintf(loc.OnDays, strings.Join(names, loc.ListSeparator)))
		}
	case !dom.IsWildcard():
		clauses = append(clauses, fmt.Sprintf(loc.OnDayOfMonth, dom.Raw))
	}

	if !month.IsWildcard() {
		months := month.Resolve().Values()
		names := make([]string, len(months))
		for i, m := range months {
			names[i] = loc.MonthName(m)
		}
		clauses = append(clauses, fmt.Sprintf(loc.InMonths, strings.Join(names, loc.ListSeparator)))
	}

	return strings.Join(clauses, loc.ClauseSeparator)
}

func describeTime(expr Expression, loc Locale) string {
	minute, hour := expr.Spec(Minute), expr.Spec(Hour)
	switch {
	case minute.IsWildcard() && hour.IsWildcard():
		return loc.EveryMinute
	case minute.single(0) && hour.IsWildcard():
		return loc.EveryHour
	case minute.Terms[0].Kind == KindStep:
		// A list led by */n reads as its step.
		return fmt.Sprintf(loc.EveryNMinutes, minute.Terms[0].Step)
	case hour.IsWildcard():
		return fmt.Sprintf(loc.MinuteOfHour, minute.Raw)
	case minute.single(0):
		return fmt.Sprintf(loc.OnTheHour, hour.Raw)
	default:
		return fmt.Sprintf(loc.AtTime, hour.Raw, twoDigits(minute))
	}
}

// twoDigits pads a single minute value; any other spec is shown as written.
func twoDigits(s Spec) string {
	if s.Kind == KindSingle {
		return fmt.Sprintf("%02d", s.Terms[0].Start)
	}
	return s.Raw
}
