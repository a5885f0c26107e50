package cron

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField_Wildcard(t *testing.T) {
	t.Parallel()

	got, err := ParseField("*", 0, 59)
	require.NoError(t, err)

	require.Len(t, got, 60)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestParseField_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     string
		min, max int
		want     []int
	}{
		{"step", "*/15", 0, 59, []int{0, 15, 30, 45}},
		{"range", "1-5", 0, 6, []int{1, 2, 3, 4, 5}},
		{"union", "1-5,10,*/20", 0, 59, []int{0, 1, 2, 3, 4, 5, 10, 20, 40}},
		{"list", "0,15,30,45", 0, 59, []int{0, 15, 30, 45}},
		{"range_step", "10-30/10", 0, 59, []int{10, 20, 30}},
		{"single_step", "50/4", 0, 59, []int{50, 54, 58}},
		{"step_from_domain_min", "*/10", 1, 31, []int{1, 11, 21, 31}},
		{"duplicates", "5,5,1-5", 0, 59, []int{1, 2, 3, 4, 5}},
		{"upper_edge", "59", 0, 59, []int{59}},
		{"lower_edge", "0", 0, 59, []int{0}},
		{"step_larger_than_domain", "*/100", 0, 59, []int{0}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseField(tt.spec, tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseField_StrictlyAscending(t *testing.T) {
	t.Parallel()

	specs := []string{"*", "*/7", "59,0,30", "40-50,45-55", "3/9,1-2", "0-59/13,7"}
	for _, spec := range specs {
		got, err := ParseField(spec, 0, 59)
		require.NoError(t, err, spec)

		assert.True(t, slices.IsSorted(got), "%q: %v not sorted", spec, got)
		assert.Equal(t, len(got), len(slices.Compact(slices.Clone(got))), "%q: duplicates in %v", spec, got)
	}
}

func TestParseField_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		segment string
		reason  string
	}{
		{"non_numeric", "abc", "abc", "not a number"},
		{"non_numeric_in_list", "1,x,3", "x", "not a number"},
		{"empty_segment", "1,,3", "", "empty segment"},
		{"zero_step", "*/0", "*/0", "step must be positive"},
		{"bad_step", "*/x", "*/x", "step"},
		{"reversed_range", "5-3", "5-3", "after end"},
		{"above_domain", "60", "60", "out of range"},
		{"range_above_domain", "50-61", "50-61", "out of range"},
		{"negative", "-1", "-1", "not a number"},
		{"half_range", "5-", "5-", "not a number"},
		{"signed_value", "+5", "+5", "not a number"},
		{"signed_step", "*/+5", "*/+5", "step"},
		{"signed_range_end", "1-+5", "1-+5", "not a number"},
		{"space_in_value", "1, 2", " 2", "not a number"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseField(tt.spec, 0, 59)
			require.Error(t, err)

			var fe *InvalidFieldError
			require.True(t, errors.As(err, &fe), "want *InvalidFieldError, got %T", err)
			assert.Equal(t, tt.segment, fe.Segment)
			assert.Contains(t, fe.Reason, tt.reason)
		})
	}
}

func TestParseField_UnsupportedDomain(t *testing.T) {
	t.Parallel()

	_, err := ParseField("*", 0, 64)
	assert.Error(t, err)

	_, err = ParseField("*", 10, 5)
	assert.Error(t, err)
}

func TestClassify_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec string
		kind Kind
	}{
		{"*", KindWildcard},
		{"*/5", KindStep},
		{"1-5", KindRange},
		{"1-30/5", KindRangeStep},
		{"5/15", KindSingleStep},
		{"7", KindSingle},
		{"1,2", KindList},
		{"*,5", KindList},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			spec, err := Classify(Minute, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, spec.Kind)
			assert.Equal(t, tt.spec, spec.Raw)
		})
	}
}

func TestClassify_FieldNameInError(t *testing.T) {
	t.Parallel()

	_, err := Classify(Hour, "24")
	require.Error(t, err)

	var fe *InvalidFieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "hour", fe.Field)
	assert.Equal(t, `invalid hour segment "24": value 24 out of range [0, 23]`, fe.Error())
}

func TestClassify_DomainEdges(t *testing.T) {
	t.Parallel()

	for _, f := range Fields() {
		d := f.Domain()

		_, err := Classify(f, strconv.Itoa(d.Min))
		assert.NoError(t, err, "%s min", f)
		_, err = Classify(f, strconv.Itoa(d.Max))
		assert.NoError(t, err, "%s max", f)
		_, err = Classify(f, strconv.Itoa(d.Max+1))
		assert.Error(t, err, "%s max+1", f)
	}

	_, err := Classify(DayOfMonth, "0")
	assert.Error(t, err)
	_, err = Classify(Month, "0")
	assert.Error(t, err)
}

func TestResolvedField(t *testing.T) {
	t.Parallel()

	spec, err := Classify(DayOfWeek, "1-5")
	require.NoError(t, err)

	r := spec.Resolve()
	assert.Equal(t, 5, r.Len())
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(-1))
	assert.False(t, r.Contains(64))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Values())
}

func TestParseFieldName(t *testing.T) {
	t.Parallel()

	tests := map[string]Field{
		"minute":       Minute,
		"Hour":         Hour,
		"day-of-month": DayOfMonth,
		"dayOfMonth":   DayOfMonth,
		"dom":          DayOfMonth,
		"month":        Month,
		"day_of_week":  DayOfWeek,
		"dow":          DayOfWeek,
	}
	for name, want := range tests {
		got, err := ParseFieldName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFieldName("second")
	assert.Error(t, err)
}

func TestField_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "day-of-week", DayOfWeek.String())
	assert.Equal(t, "field(9)", Field(9).String())
	assert.Equal(t, "range-step", KindRangeStep.String())
}
