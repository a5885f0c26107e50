package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/cronscope/internal/cron"
	"github.com/crucial707/cronscope/internal/crosscheck"
	"github.com/crucial707/cronscope/internal/metrics"
	"github.com/crucial707/cronscope/internal/middleware"
	"github.com/crucial707/cronscope/internal/models"
	"github.com/crucial707/cronscope/internal/presets"
)

// CronHandler explains cron expressions, parses single fields and serves presets.
type CronHandler struct {
	Presets []presets.Preset

	// DefaultCount is used when a request does not set count; MaxCount caps it.
	DefaultCount int
	MaxCount     int

	// Now returns the reference time for occurrences. Defaults to time.Now.
	Now func() time.Time
}

// NewCronHandler returns a handler with the given presets and occurrence limits.
func NewCronHandler(list []presets.Preset, defaultCount, maxCount int) *CronHandler {
	return &CronHandler{
		Presets:      list,
		DefaultCount: defaultCount,
		MaxCount:     maxCount,
		Now:          time.Now,
	}
}

// explainRequest is the body of POST /v1/cron/explain.
type explainRequest struct {
	Expression string `json:"expression"`
	Count      *int   `json:"count"`
	Locale     string `json:"locale"`
	From       string `json:"from"`
}

// setFieldRequest is the body of POST /v1/cron/fields.
type setFieldRequest struct {
	Expression string `json:"expression"`
	Field      string `json:"field"`
	Value      string `json:"value"`
	Count      *int   `json:"count"`
	Locale     string `json:"locale"`
	From       string `json:"from"`
}

// Explain handles GET /v1/cron/explain?expr=&count=&locale=&from=.
func (h *CronHandler) Explain(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fields := make(map[string]string)

	expr := q.Get("expr")
	if strings.TrimSpace(expr) == "" {
		fields["expr"] = "required"
	}
	count, err := h.parseCount(q.Get("count"))
	if err != nil {
		fields["count"] = err.Error()
	}
	from, err := h.parseFrom(q.Get("from"))
	if err != nil {
		fields["from"] = err.Error()
	}
	if len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	h.respondExplain(w, r, expr, count, from, h.locale(r, q.Get("locale")))
}

// ExplainJSON handles POST /v1/cron/explain. Body: {"expression": "0 9 * * 1-5", "count": 5, "locale": "zh"}.
func (h *CronHandler) ExplainJSON(w http.ResponseWriter, r *http.Request) {
	var input explainRequest
	if !decodeJSON(w, r, &input) {
		return
	}
	fields := make(map[string]string)
	if strings.TrimSpace(input.Expression) == "" {
		fields["expression"] = "required"
	}
	count, err := h.countOrDefault(input.Count)
	if err != nil {
		fields["count"] = err.Error()
	}
	from, err := h.parseFrom(input.From)
	if err != nil {
		fields["from"] = err.Error()
	}
	if len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	h.respondExplain(w, r, input.Expression, count, from, h.locale(r, input.Locale))
}

// GetField handles GET /v1/cron/fields/{field}?spec=*/15 and returns the classified field and its values.
func (h *CronHandler) GetField(w http.ResponseWriter, r *http.Request) {
	f, err := cron.ParseFieldName(chi.URLParam(r, "field"))
	if err != nil {
		JSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	raw := strings.TrimSpace(r.URL.Query().Get("spec"))
	if raw == "" {
		JSONValidationError(w, "validation failed", map[string]string{"spec": "required"}, http.StatusBadRequest)
		return
	}

	spec, err := cron.Classify(f, raw)
	if err != nil {
		writeInvalidExpression(w, err)
		return
	}

	JSON(w, http.StatusOK, models.NewFieldView(f, spec))
}

// SetField handles POST /v1/cron/fields. Body: {"expression": "0 9 * * *", "field": "day-of-week", "value": "1-5"}.
// It replaces one field and explains the edited expression.
func (h *CronHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var input setFieldRequest
	if !decodeJSON(w, r, &input) {
		return
	}
	fields := make(map[string]string)
	if strings.TrimSpace(input.Expression) == "" {
		fields["expression"] = "required"
	}
	f, err := cron.ParseFieldName(input.Field)
	if err != nil {
		fields["field"] = "must be one of minute, hour, day-of-month, month, day-of-week"
	}
	count, err := h.countOrDefault(input.Count)
	if err != nil {
		fields["count"] = err.Error()
	}
	from, err := h.parseFrom(input.From)
	if err != nil {
		fields["from"] = err.Error()
	}
	if len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	expr, err := cron.Parse(input.Expression)
	if err != nil {
		writeInvalidExpression(w, err)
		return
	}
	edited, err := expr.WithField(f, input.Value)
	if err != nil {
		writeInvalidExpression(w, err)
		return
	}

	h.respondExplain(w, r, edited.String(), count, from, h.locale(r, input.Locale))
}

// ListPresets handles GET /v1/cron/presets?locale=zh.
func (h *CronHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(r, r.URL.Query().Get("locale"))
	JSON(w, http.StatusOK, models.NewPresets(h.Presets, loc))
}

func (h *CronHandler) respondExplain(w http.ResponseWriter, r *http.Request, raw string, count int, from time.Time, loc cron.Locale) {
	start := time.Now()
	x := cron.Explain(raw, count, from, loc)
	if !x.Valid() {
		metrics.RecordExplain(metrics.ResultInvalid, 0, 0)
		writeInvalidExpression(w, x.Err)
		return
	}

	var standard []time.Time
	if x.Expression.DaysDivergent() {
		standard = crosscheck.Divergent(x.Expression, count, from)
	}
	elapsed := time.Since(start)

	result := metrics.ResultValid
	if len(x.Occurrences) == 0 && count > 0 {
		result = metrics.ResultEmpty
	}
	metrics.RecordExplain(result, elapsed.Seconds(), len(x.Occurrences))
	slog.Debug("cron explained",
		"expr", x.Expression.String(),
		"count", count,
		"found", len(x.Occurrences),
		"duration_ms", elapsed.Milliseconds())

	JSON(w, http.StatusOK, models.NewExplanation(x, loc, standard))
}

// writeInvalidExpression sends 400 with the failing field and reason, or
// "expression" for a wrong token count.
func writeInvalidExpression(w http.ResponseWriter, err error) {
	var fe *cron.InvalidFieldError
	if errors.As(err, &fe) && fe.Field != "" {
		JSONValidationError(w, cron.ErrInvalidExpression.Error(),
			map[string]string{fe.Field: fmt.Sprintf("%s: %s", fe.Segment, fe.Reason)}, http.StatusBadRequest)
		return
	}
	if errors.Is(err, cron.ErrInvalidExpression) {
		reason := strings.TrimPrefix(err.Error(), cron.ErrInvalidExpression.Error()+": ")
		JSONValidationError(w, cron.ErrInvalidExpression.Error(),
			map[string]string{"expression": reason}, http.StatusBadRequest)
		return
	}
	JSONError(w, err.Error(), http.StatusBadRequest)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if middleware.IsBodyTooLarge(err) {
			JSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *CronHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// locale picks the locale from an explicit parameter, then Accept-Language.
func (h *CronHandler) locale(r *http.Request, param string) cron.Locale {
	return cron.LocaleFor(param, r.Header.Get("Accept-Language"))
}

func (h *CronHandler) parseCount(s string) (int, error) {
	if s == "" {
		return h.countOrDefault(nil)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	return h.countOrDefault(&n)
}

func (h *CronHandler) countOrDefault(n *int) (int, error) {
	if n == nil {
		return min(h.DefaultCount, h.MaxCount), nil
	}
	if *n < 0 {
		return 0, errors.New("must not be negative")
	}
	if *n > h.MaxCount {
		return 0, fmt.Errorf("must be at most %d", h.MaxCount)
	}
	return *n, nil
}

// parseFrom reads an RFC 3339 reference time; empty means now.
func (h *CronHandler) parseFrom(s string) (time.Time, error) {
	if s == "" {
		return h.now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("must be an RFC 3339 timestamp")
	}
	return t, nil
}
