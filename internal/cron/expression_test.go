package cron

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	expressions := []string{
		"* * * * *",
		"0 9 * * 1-5",
		"*/15 0-6 1,15 * 1-5",
		"0 0 1 1 *",
		"0-30/5 * * * *",
		"  30   3 * *\t0  ",
	}
	for _, raw := range expressions {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(raw)
			assert.NoError(t, err)
		})
	}
}

func TestParse_WrongFieldCount(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "* * * *", "* * * * * *", "0 0 * * * 2026"} {
		_, err := Parse(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrInvalidExpression), raw)

		var fe *InvalidFieldError
		assert.False(t, errors.As(err, &fe), "%q: token count errors carry no field", raw)
	}
}

func TestParse_InvalidFieldWrapsBoth(t *testing.T) {
	t.Parallel()

	_, err := Parse("0 9 * * x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidExpression))

	var fe *InvalidFieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "day-of-week", fe.Field)
	assert.Equal(t, "x", fe.Segment)
}

func TestParse_OutOfDomainRejected(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"60 * * * *", "* 99 * * *", "* * 32 * *", "* * * 13 *", "* * * * 7"} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidExpression, raw)
	}
}

func TestExpression_String(t *testing.T) {
	t.Parallel()

	e, err := Parse("  0   9 *  * 1-5 ")
	require.NoError(t, err)

	assert.Equal(t, "0 9 * * 1-5", e.String())
	assert.Equal(t, "9", e.Field(Hour))
	assert.Equal(t, [5]string{"0", "9", "*", "*", "1-5"}, e.FieldStrings())
}

func TestExpression_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"*/5 * * * *", "1-5,10,*/20 0-23/6 1,15 */3 1-5", "0 0 29 2 *"} {
		first, err := Parse(raw)
		require.NoError(t, err)

		again, err := Parse(first.String())
		require.NoError(t, err)

		for _, f := range Fields() {
			assert.Equal(t, first.Resolve(f).Values(), again.Resolve(f).Values(), "%s %s", raw, f)

			reparsed, err := Classify(f, first.Field(f))
			require.NoError(t, err)
			assert.Equal(t, first.Resolve(f).Values(), reparsed.Resolve().Values())
		}
	}
}

func TestExpression_DaysDivergent(t *testing.T) {
	t.Parallel()

	assert.False(t, MustParse("0 0 * * *").DaysDivergent())
	assert.False(t, MustParse("0 0 13 * *").DaysDivergent())
	assert.False(t, MustParse("0 0 * * 5").DaysDivergent())
	assert.True(t, MustParse("0 0 13 * 5").DaysDivergent())
	assert.True(t, MustParse("0 0 */1 * */1").DaysDivergent())
}

func TestExpression_WithField(t *testing.T) {
	t.Parallel()

	e := MustParse("0 9 * * 1-5")

	edited, err := e.WithField(Hour, " 10 ")
	require.NoError(t, err)
	assert.Equal(t, "0 10 * * 1-5", edited.String())
	assert.Equal(t, "0 9 * * 1-5", e.String(), "original unchanged")

	_, err = e.WithField(Minute, "1 2")
	assert.ErrorIs(t, err, ErrInvalidExpression)

	_, err = e.WithField(Minute, "")
	assert.ErrorIs(t, err, ErrInvalidExpression)

	_, err = e.WithField(Month, "13")
	var fe *InvalidFieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "month", fe.Field)

	_, err = e.WithField(Field(7), "1")
	assert.Error(t, err)
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("* *") })
}

func TestExpression_Matches(t *testing.T) {
	t.Parallel()

	e := MustParse("15 2 * * 1-5")

	assert.True(t, e.Matches(time.Date(2026, 2, 20, 2, 15, 0, 0, time.UTC)))  // Friday
	assert.False(t, e.Matches(time.Date(2026, 2, 20, 2, 16, 0, 0, time.UTC))) // wrong minute
	assert.False(t, e.Matches(time.Date(2026, 2, 21, 2, 15, 0, 0, time.UTC))) // Saturday
}
