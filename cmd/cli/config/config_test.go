package config

import "testing"

func TestLocale(t *testing.T) {
	tests := []struct {
		override, lang, want string
	}{
		{"zh", "en_US.UTF-8", "zh"},
		{"", "zh_CN.UTF-8", "zh-CN"},
		{"", "de_DE@euro", "de-DE"},
		{"", "C", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Setenv("CRONSCOPE_LOCALE", tt.override)
		t.Setenv("LANG", tt.lang)
		if got := Locale(); got != tt.want {
			t.Errorf("Locale() with CRONSCOPE_LOCALE=%q LANG=%q: got %q, want %q", tt.override, tt.lang, got, tt.want)
		}
	}
}
