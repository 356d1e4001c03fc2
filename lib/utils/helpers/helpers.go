package helpers

import (
	"strings"
	"time"
)

// ParseClock parses "HH:MM" into hour and minute; falsy ok on bad input.
func ParseClock(value string) (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

func JoinNames(names []string, sep string) string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			filtered = append(filtered, name)
		}
	}
	return strings.Join(filtered, sep)
}
