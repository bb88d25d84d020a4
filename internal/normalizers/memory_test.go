package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMemory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "gigabytes", input: "2G", expected: 2147483648},
		{name: "megabytes", input: "512M", expected: 536870912},
		{name: "kilobytes", input: "1024K", expected: 1048576},
		{name: "terabytes", input: "1T", expected: 1 << 40},
		{name: "petabytes", input: "1P", expected: 1 << 50},
		{name: "exabytes", input: "2E", expected: 2 << 60},
		{name: "lower case unit", input: "2g", expected: 2147483648},
		{name: "plain bytes", input: "4096", expected: 4096},
		{name: "zero", input: "0", expected: 0},
		{name: "empty", input: "", expected: 0},
		{name: "blank", input: "   ", expected: 0},
		{name: "approximate marker", input: "1024K+", expected: 1048576},
		{name: "fraction truncated to bytes", input: "1.5K", expected: 1536},
		{name: "fractional bytes truncated", input: "10.7", expected: 10},
		{name: "fraction of a megabyte", input: "0.001M", expected: 1048},
		{name: "surrounding blanks", input: " 3G ", expected: 3221225472},
		{name: "unknown unit", input: "3X", expected: 0},
		{name: "two letter unit", input: "3GB", expected: 0},
		{name: "no number", input: "G", expected: 0},
		{name: "not a number", input: "N/A", expected: 0},
		{name: "negative", input: "-5M", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseMemory(tt.input))
		})
	}
}

func TestParseRequestedMemory(t *testing.T) {
	t.Parallel()

	const gib = int64(1) << 30

	tests := []struct {
		name          string
		input         string
		cpus          int64
		nodes         int64
		expected      int64
		expectedKnown bool
	}{
		{name: "per cpu", input: "4Gc", cpus: 4, nodes: 1, expected: 4 * gib * 4, expectedKnown: true},
		{name: "per node", input: "4Gn", cpus: 4, nodes: 2, expected: 4 * gib * 2, expectedKnown: true},
		{name: "whole job", input: "4G", cpus: 4, nodes: 2, expected: 4 * gib, expectedKnown: true},
		{name: "upper case mode", input: "2GC", cpus: 3, nodes: 1, expected: 6 * gib, expectedKnown: true},
		{name: "per cpu with zero cpus counts one", input: "1Gc", cpus: 0, nodes: 1, expected: gib, expectedKnown: true},
		{name: "per node with zero nodes counts one", input: "1Gn", cpus: 8, nodes: 0, expected: gib, expectedKnown: true},
		{name: "megabytes per cpu", input: "4000Mc", cpus: 2, nodes: 1, expected: 4000 * (1 << 20) * 2, expectedKnown: true},
		{name: "fraction", input: "1.5G", cpus: 1, nodes: 1, expected: 1610612736, expectedKnown: true},
		{name: "zero with unit is a known zero", input: "0M", cpus: 1, nodes: 1, expected: 0, expectedKnown: true},
		{name: "missing unit is unknown", input: "4096", cpus: 1, nodes: 1, expectedKnown: false},
		{name: "empty is unknown", input: "", cpus: 1, nodes: 1, expectedKnown: false},
		{name: "unknown mode", input: "4Gx", cpus: 1, nodes: 1, expectedKnown: false},
		{name: "garbage", input: "N/A", cpus: 1, nodes: 1, expectedKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bytes, ok := ParseRequestedMemory(tt.input, tt.cpus, tt.nodes)
			assert.Equal(t, tt.expectedKnown, ok)
			if tt.expectedKnown {
				assert.Equal(t, tt.expected, bytes)
			} else {
				assert.Zero(t, bytes)
			}
		})
	}
}
