package normalizers

import (
	"math"
	"strconv"
	"strings"
)

// ParseInteger reads the leading integer of s, ignoring surrounding blanks and anything after
// the digits. "3600" -> 3600, " 12abc" -> 12, "-4" -> -4, "Partition_Limit" -> 0.
func ParseInteger(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		if s[0] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return n
}

// parseLeadingFloat reads the leading decimal number of s ("04.5xyz" -> 4.5).
// Returns 0 when s does not start with a number.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	intStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == intStart {
		return 0
	}
	if end+1 < len(s) && s[end] == '.' && isDigit(s[end+1]) {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

// splitDigitsAndDots splits s into its leading run of digits and dots and the remainder.
func splitDigitsAndDots(s string) (number string, rest string) {
	end := 0
	for end < len(s) && (isDigit(s[end]) || s[end] == '.') {
		end++
	}
	return s[:end], s[end:]
}

// parseDottedNumber converts a run of digits and dots to a float, reading up to the second dot
// ("1.5" -> 1.5, "1.2.3" -> 1.2, "." -> 0).
func parseDottedNumber(number string) float64 {
	if first := strings.IndexByte(number, '.'); first >= 0 {
		if second := strings.IndexByte(number[first+1:], '.'); second >= 0 {
			number = number[:first+1+second]
		}
	}
	number = strings.TrimSuffix(number, ".")
	if number == "" || number == "." {
		return 0
	}
	if number[0] == '.' {
		number = "0" + number
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// truncateToInt64 drops the fractional part, saturating at the int64 range.
func truncateToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
