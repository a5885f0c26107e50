package cron

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned for any expression that cannot be parsed.
// Field level failures wrap it together with an *InvalidFieldError.
var ErrInvalidExpression = errors.New("invalid cron expression")

// InvalidFieldError names the field and the comma-separated segment that
// failed to parse.
type InvalidFieldError struct {
	// Field is the field name ("minute", "hour", ...). Empty for ParseField
	// calls with a caller-supplied domain.
	Field   string
	Segment string
	Reason  string
}

func (e *InvalidFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid segment %q: %s", e.Segment, e.Reason)
	}
	return fmt.Sprintf("invalid %s segment %q: %s", e.Field, e.Segment, e.Reason)
}

func fieldError(field, segment, format string, args ...any) *InvalidFieldError {
	return &InvalidFieldError{
		Field:   field,
		Segment: segment,
		Reason:  fmt.Sprintf(format, args...),
	}
}
