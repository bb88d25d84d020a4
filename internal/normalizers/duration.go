package normalizers

import (
	"strings"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// ParseDuration converts a sacct elapsed-time value to seconds. Accepted forms are
// [days-]HH:MM:SS and [days-]MM:SS, where seconds may carry a fraction
// ("1-02:03:04" -> 93784, "03:04.5" -> 184.5). Anything else yields 0.
func ParseDuration(text string) float64 {
	str := strings.TrimSpace(text)
	if str == "" {
		return 0
	}

	var days int64
	timePart := str
	if dayStr, rest, found := strings.Cut(str, "-"); found {
		days = ParseInteger(dayStr)
		timePart = rest
	}

	fields := splitDroppingTrailingEmpty(timePart, ":")
	var hours, minutes int64
	var seconds float64
	switch len(fields) {
	case 3:
		hours = ParseInteger(fields[0])
		minutes = ParseInteger(fields[1])
		seconds = parseLeadingFloat(fields[2])
	case 2:
		minutes = ParseInteger(fields[0])
		seconds = parseLeadingFloat(fields[1])
	default:
		return 0
	}

	return float64(days*secondsPerDay+hours*secondsPerHour+minutes*secondsPerMinute) + seconds
}

// splitDroppingTrailingEmpty splits s and discards empty trailing fields, so "01:02:" has two
// fields and "" has none.
func splitDroppingTrailingEmpty(s string, sep string) []string {
	fields := strings.Split(s, sep)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
