package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/v1/cron/explain", "/v1/cron/explain"},
		{"/v1/cron/fields/minute", "/v1/cron/fields/{field}"},
		{"/v1/cron/fields", "/v1/cron/fields"},
		{"/static/12", "/static/{id}"},
		{"/static/12/x", "/static/{id}/x"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecordExplain(t *testing.T) {
	valid := testutil.ToFloat64(ExplainTotal.WithLabelValues(ResultValid))
	invalid := testutil.ToFloat64(ExplainTotal.WithLabelValues(ResultInvalid))

	RecordExplain(ResultValid, 0.001, 5)
	RecordExplain(ResultInvalid, 0, 0)

	if got := testutil.ToFloat64(ExplainTotal.WithLabelValues(ResultValid)); got != valid+1 {
		t.Errorf("valid count: got %v, want %v", got, valid+1)
	}
	if got := testutil.ToFloat64(ExplainTotal.WithLabelValues(ResultInvalid)); got != invalid+1 {
		t.Errorf("invalid count: got %v, want %v", got, invalid+1)
	}
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/v1/cron/fields/{field}", "200"))

	RecordRequest("GET", "/v1/cron/fields/hour", 200, 0.01)

	if got := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/v1/cron/fields/{field}", "200")); got != before+1 {
		t.Errorf("got %v, want %v", got, before+1)
	}
}
