package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS", "DEFAULT_OCCURRENCES",
		"MAX_OCCURRENCES", "PRESETS_FILE", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST", "MAX_BODY_BYTES", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" || cfg.Env != "dev" || cfg.LogFormat != "text" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.DefaultOccurrences != 5 || cfg.MaxOccurrences != 50 {
		t.Errorf("occurrences: got %d/%d, want 5/50", cfg.DefaultOccurrences, cfg.MaxOccurrences)
	}
	if cfg.RateLimitPerMinute != 120 || cfg.RateLimitBurst != 20 || cfg.MaxBodyBytes != 65536 {
		t.Errorf("limits: got %+v", cfg)
	}
	if cfg.CORSAllowedOrigins != nil || cfg.PresetsFile != "" || cfg.TrustedProxies != nil {
		t.Errorf("expected no CORS origins or presets file, got %+v", cfg)
	}
	if cfg.IsProd() {
		t.Error("dev config reported as prod")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("MAX_OCCURRENCES", "10")
	t.Setenv("DEFAULT_OCCURRENCES", "25")
	t.Setenv("PRESETS_FILE", "/etc/cronscope/presets.yaml")
	t.Setenv("TRUSTED_PROXIES", "127.0.0.1, 10.0.0.0/8")

	cfg := Load()

	if cfg.Port != "9090" || !cfg.IsProd() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.MaxOccurrences != 10 || cfg.DefaultOccurrences != 10 {
		t.Errorf("default should be capped by max: got %d/%d", cfg.DefaultOccurrences, cfg.MaxOccurrences)
	}
	if cfg.PresetsFile != "/etc/cronscope/presets.yaml" {
		t.Errorf("PresetsFile: got %q", cfg.PresetsFile)
	}
	if want := []string{"127.0.0.1", "10.0.0.0/8"}; !reflect.DeepEqual(cfg.TrustedProxies, want) {
		t.Errorf("TrustedProxies: got %v, want %v", cfg.TrustedProxies, want)
	}
}

func TestGetEnvInt_RejectsNonPositive(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"abc", 7},
		{"0", 7},
		{"-3", 7},
		{"12", 12},
	}
	for _, tt := range tests {
		t.Setenv("CRONSCOPE_TEST_INT", tt.value)
		if got := getEnvInt("CRONSCOPE_TEST_INT", 7); got != tt.want {
			t.Errorf("getEnvInt(%q): got %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" https://a.example.com, ,http://localhost:3000 ")
	want := []string{"https://a.example.com", "http://localhost:3000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Error("empty input should give nil")
	}
}
