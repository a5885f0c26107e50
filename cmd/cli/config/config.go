package config

import (
	"os"
	"strings"
)

// Locale returns the preferred description locale. CRONSCOPE_LOCALE wins over
// the POSIX LANG variable; "zh_CN.UTF-8" becomes "zh-CN".
func Locale() string {
	if v := os.Getenv("CRONSCOPE_LOCALE"); v != "" {
		return v
	}
	lang := os.Getenv("LANG")
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}

// PresetsFile returns the YAML presets file from CRONSCOPE_PRESETS_FILE, or "" for the built-in list.
func PresetsFile() string {
	return os.Getenv("CRONSCOPE_PRESETS_FILE")
}
