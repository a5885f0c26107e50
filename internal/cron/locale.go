package cron

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale holds the phrases used by DescribeIn. Format verbs are documented
// per field.
type Locale struct {
	Tag language.Tag

	EveryMinute   string
	EveryHour     string
	EveryNMinutes string // %d step
	MinuteOfHour  string // %s minute field
	OnTheHour     string // %s hour field
	AtTime        string // %s hour field, %s two-digit minute field
	Weekdays      string
	OnDays        string // %s list of day names
	OnDayOfMonth  string // %s day-of-month field
	InMonths      string // %s list of month names
	Weekday       string // %s day name, for rendering a single date
	NoOccurrences string

	ListSeparator   string
	ClauseSeparator string

	// DayNames is indexed by day-of-week value, 0 = Sunday.
	DayNames [7]string
	// MonthNames is indexed by month value minus one.
	MonthNames [12]string
}

var English = Locale{
	Tag:             language.English,
	EveryMinute:     "every minute",
	EveryHour:       "every hour on the hour",
	EveryNMinutes:   "every %d minutes",
	MinuteOfHour:    "at minute %s of every hour",
	OnTheHour:       "at %s:00",
	AtTime:          "at %s:%s",
	Weekdays:        "weekdays",
	OnDays:          "on %s",
	OnDayOfMonth:    "on day %s of the month",
	InMonths:        "in %s",
	Weekday:         "%s",
	NoOccurrences:   "no upcoming occurrences found",
	ListSeparator:   ", ",
	ClauseSeparator: ", ",
	DayNames:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	MonthNames: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

var Chinese = Locale{
	Tag:             language.Chinese,
	EveryMinute:     "每分钟",
	EveryHour:       "每小时整点",
	EveryNMinutes:   "每 %d 分钟",
	MinuteOfHour:    "每小时的第 %s 分钟",
	OnTheHour:       "%s 点整",
	AtTime:          "%s:%s",
	Weekdays:        "工作日",
	OnDays:          "周%s",
	OnDayOfMonth:    "每月 %s 号",
	InMonths:        "%s",
	Weekday:         "周%s",
	NoOccurrences:   "未来一年内没有执行时间",
	ListSeparator:   "、",
	ClauseSeparator: "，",
	DayNames:        [7]string{"日", "一", "二", "三", "四", "五", "六"},
	MonthNames: [12]string{"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月"},
}

var (
	locales       = []Locale{English, Chinese}
	localeMatcher = language.NewMatcher([]language.Tag{English.Tag, Chinese.Tag})
)

// Name returns the short tag ("en", "zh").
func (l Locale) Name() string { return l.Tag.String() }

// DayName returns the name of day-of-week value d (0 = Sunday).
func (l Locale) DayName(d int) string { return l.DayNames[d%7] }

// MonthName returns the name of month value m (1 = January).
func (l Locale) MonthName(m int) string { return l.MonthNames[(m-1)%12] }

// LocaleFor picks a locale from language preferences such as "zh-CN" or an
// Accept-Language header. The first preference that matches wins; English is
// the fallback.
func LocaleFor(prefs ...string) Locale {
	for _, pref := range prefs {
		if strings.TrimSpace(pref) == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := localeMatcher.Match(tags...)
		if conf != language.No {
			return locales[idx]
		}
	}
	return English
}
