package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "days hours minutes seconds", input: "1-02:03:04", expected: 93784},
		{name: "hours minutes seconds", input: "02:03:04", expected: 7384},
		{name: "minutes seconds", input: "03:04", expected: 184},
		{name: "fractional seconds", input: "00:02:03.456", expected: 123.456},
		{name: "minutes with fractional seconds", input: "03:04.5", expected: 184.5},
		{name: "days with minutes seconds", input: "2-10:00", expected: 2*86400 + 600},
		{name: "zero", input: "00:00:00", expected: 0},
		{name: "empty", input: "", expected: 0},
		{name: "single field", input: "42", expected: 0},
		{name: "four fields", input: "01:02:03:04", expected: 0},
		{name: "trailing separator is dropped", input: "01:02:", expected: 62},
		{name: "surrounding blanks", input: "  00:01:00 ", expected: 60},
		{name: "non numeric fields", input: "aa:bb:cc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, ParseDuration(tt.input), 1e-9)
		})
	}
}

func TestParseInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int64
	}{
		{input: "3600", expected: 3600},
		{input: " 12", expected: 12},
		{input: "12abc", expected: 12},
		{input: "-4", expected: -4},
		{input: "+7", expected: 7},
		{input: "", expected: 0},
		{input: "Partition_Limit", expected: 0},
		{input: "UNLIMITED", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseInteger(tt.input))
		})
	}
}
