// Package cron parses standard 5-field cron expressions, describes them in
// plain language and enumerates their upcoming run times.
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12)
//	│ │ │ │ ┌───────────── day of week (0-6, 0=Sunday)
//	│ │ │ │ │
//	* * * * *
//
// Each field is a comma-separated list of terms: *, */n, a, a/n, a-b, a-b/n.
// Values outside a field's domain are rejected.
//
// When both day-of-month and day-of-week are restricted, a time must match
// both of them (AND). Standard cron ORs the two; Expression.DaysDivergent
// reports when an expression is affected by the difference.
//
// All calendar math runs in the host's local time zone.
package cron
