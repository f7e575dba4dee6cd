package render

import "time"

// dateLayouts are the timestamp shapes the API has been seen to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders an API timestamp as DD.MM.YYYY HH:MM. Empty input
// renders as N/A; anything unparsable passes through unchanged.
func FormatDate(s string) string {
	if s == "" {
		return "N/A"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02.01.2006 15:04")
		}
	}
	return s
}

// Clip returns the first max runes of s.
func Clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
