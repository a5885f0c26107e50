package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/crucial707/cronscope/internal/cron"
	cronmw "github.com/crucial707/cronscope/internal/middleware"
	"github.com/crucial707/cronscope/internal/models"
)

//go:embed templates
var templatesFS embed.FS

const (
	defaultPort = "3000"
	defaultAPI  = "http://localhost:8080"
	defaultExpr = "0 9 * * 1-5"
	envWebPort  = "CRONSCOPE_WEB_PORT"
	envAPIURL   = "CRONSCOPE_API_URL"

	// occurrenceCount matches the "next 5 runs" panel.
	occurrenceCount = 5
)

var apiClient = &http.Client{Timeout: 10 * time.Second}

func main() {
	port := getEnv(envWebPort, defaultPort)
	apiBase := getEnv(envAPIURL, defaultAPI)

	log.Printf("Web UI running on http://localhost:%s (API: %s)", port, apiBase)
	if err := http.ListenAndServe(":"+port, newRouter(apiBase)); err != nil {
		log.Fatal(err)
	}
}

func newRouter(apiBase string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cronmw.SecurityHeaders(false, cronmw.WebContentSecurityPolicy))

	// Health (no API call, no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/", index(apiBase))
	r.Post("/fields", editFields(apiBase))
	return r
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// apiGet performs GET to the API on behalf of the visitor in r.
func apiGet(r *http.Request, apiBase, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, apiBase+path, nil)
	if err != nil {
		return nil, 0, err
	}
	return apiDo(r, req)
}

// apiPost performs POST to the API with a JSON body on behalf of the visitor in r.
func apiPost(r *http.Request, apiBase, path string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, apiBase+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	return apiDo(r, req)
}

// apiDo appends the visitor to X-Forwarded-For so an API that trusts this
// server rate-limits each visitor separately.
func apiDo(r, req *http.Request) ([]byte, int, error) {
	req.Header.Set("X-Forwarded-For", forwardedFor(r))
	resp, err := apiClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return data, resp.StatusCode, nil
}

func forwardedFor(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if prior := r.Header.Get("X-Forwarded-For"); prior != "" {
		return prior + ", " + host
	}
	return host
}

// apiError is the API's 400 body.
type apiError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// editorField is one input of the five-field editor.
type editorField struct {
	Name  string
	Label string
	Value string
	Error string
}

var editorLabels = map[cron.Field]string{
	cron.Minute:     "Minute",
	cron.Hour:       "Hour",
	cron.DayOfMonth: "Day",
	cron.Month:      "Month",
	cron.DayOfWeek:  "Weekday",
}

type pageData struct {
	Expr        string
	Lang        string
	Valid       bool
	Description string
	Message     string
	Occurrences []string
	Standard    []string
	Divergent   bool
	Editor      []editorField
	Presets     []models.Preset
	Error       string
	FieldErrors map[string]string
}

// pageLocale reads ?lang=, then Accept-Language.
func pageLocale(r *http.Request) cron.Locale {
	return cron.LocaleFor(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

// newEditor splits expr into the five inputs. It returns nil unless expr has five tokens.
func newEditor(expr string, fieldErrors map[string]string) []editorField {
	tokens := strings.Fields(expr)
	if len(tokens) != len(cron.Fields()) {
		return nil
	}
	out := make([]editorField, 0, len(tokens))
	for i, f := range cron.Fields() {
		out = append(out, editorField{
			Name:  f.String(),
			Label: editorLabels[f],
			Value: tokens[i],
			Error: fieldErrors[f.String()],
		})
	}
	return out
}

func pageURL(expr, lang string) string {
	q := url.Values{"expr": {expr}}
	if lang != "" {
		q.Set("lang", lang)
	}
	return "/?" + q.Encode()
}

func index(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expr := strings.TrimSpace(r.URL.Query().Get("expr"))
		if expr == "" {
			expr = defaultExpr
		}
		loc := pageLocale(r)
		data := pageData{Expr: expr, Lang: loc.Name()}

		if list, err := fetchPresets(r, apiBase, loc); err == nil {
			data.Presets = list
		} else {
			log.Printf("presets: %v", err)
		}

		q := url.Values{
			"expr":   {expr},
			"count":  {fmt.Sprint(occurrenceCount)},
			"locale": {loc.Name()},
		}
		body, status, err := apiGet(r, apiBase, "/v1/cron/explain?"+q.Encode())
		if err != nil {
			data.Error = err.Error()
			renderTemplate(w, "index.html", data)
			return
		}
		switch status {
		case http.StatusOK:
			var x models.Explanation
			if err := json.Unmarshal(body, &x); err != nil {
				data.Error = "Invalid explain response"
				break
			}
			fillExplanation(&data, x, loc)
		case http.StatusBadRequest:
			var e apiError
			_ = json.Unmarshal(body, &e)
			data.Error = e.Error
			data.FieldErrors = e.Fields
		default:
			data.Error = "API error: " + string(body)
		}

		data.Editor = newEditor(expr, data.FieldErrors)
		renderTemplate(w, "index.html", data)
	}
}

func fillExplanation(data *pageData, x models.Explanation, loc cron.Locale) {
	data.Valid = x.Valid
	data.Expr = x.Expression
	data.Description = x.Description
	data.Message = x.Message
	data.Divergent = x.DaysDivergent
	for _, t := range x.Occurrences {
		data.Occurrences = append(data.Occurrences, models.FormatOccurrence(t, loc))
	}
	for _, t := range x.StandardOccurrences {
		data.Standard = append(data.Standard, models.FormatOccurrence(t, loc))
	}
}

func fetchPresets(r *http.Request, apiBase string, loc cron.Locale) ([]models.Preset, error) {
	body, status, err := apiGet(r, apiBase, "/v1/cron/presets?locale="+url.QueryEscape(loc.Name()))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("API status %d", status)
	}
	var list []models.Preset
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// editFields applies the five-field editor: every input that differs from the
// current expression is sent to the API as one field edit, in field order.
func editFields(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		expr := strings.TrimSpace(r.PostForm.Get("expr"))
		lang := r.PostForm.Get("lang")
		current := strings.Fields(expr)
		if len(current) != len(cron.Fields()) {
			http.Redirect(w, r, pageURL(expr, lang), http.StatusSeeOther)
			return
		}

		for i, f := range cron.Fields() {
			value := strings.TrimSpace(r.PostForm.Get(f.String()))
			if value == current[i] {
				continue
			}
			payload, _ := json.Marshal(map[string]string{"expression": expr, "field": f.String(), "value": value})
			body, status, err := apiPost(r, apiBase, "/v1/cron/fields", payload)
			if err != nil {
				renderTemplate(w, "index.html", pageData{Expr: expr, Lang: lang, Error: err.Error(), Editor: newEditor(expr, nil)})
				return
			}
			if status != http.StatusOK {
				var e apiError
				_ = json.Unmarshal(body, &e)
				editor := newEditor(expr, e.Fields)
				editor[i].Value = value
				renderTemplate(w, "index.html", pageData{Expr: expr, Lang: lang, Error: e.Error, FieldErrors: e.Fields, Editor: editor})
				return
			}
			var x models.Explanation
			if err := json.Unmarshal(body, &x); err != nil {
				http.Error(w, "invalid API response", http.StatusBadGateway)
				return
			}
			expr = x.Expression
		}

		http.Redirect(w, r, pageURL(expr, lang), http.StatusSeeOther)
	}
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	funcs := template.FuncMap{
		"eq":   func(a, b interface{}) bool { return a == b },
		"inc":  func(i int) int { return i + 1 },
		"page": pageURL,
	}
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	layout, _ := templatesFS.ReadFile("templates/layout.html")
	t := template.Must(template.New("").Funcs(funcs).Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template execute: %v", err)
	}
}
