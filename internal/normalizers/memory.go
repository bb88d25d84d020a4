package normalizers

import (
	"strings"
)

// RequestedMemoryMode says what a requested-memory amount is counted against.
type RequestedMemoryMode byte

const (
	PerJob  RequestedMemoryMode = 0
	PerCPU  RequestedMemoryMode = 'c'
	PerNode RequestedMemoryMode = 'n'
)

// unitMultiplier maps a binary size suffix to its byte multiplier.
func unitMultiplier(unit byte) (float64, bool) {
	switch unit {
	case 'K', 'k':
		return 1 << 10, true
	case 'M', 'm':
		return 1 << 20, true
	case 'G', 'g':
		return 1 << 30, true
	case 'T', 't':
		return 1 << 40, true
	case 'P', 'p':
		return 1 << 50, true
	case 'E', 'e':
		return 1 << 60, true
	}
	return 0, false
}

// ParseMemory converts a sacct memory value such as "512M", "2.5G" or "1024K+" to bytes.
// A trailing '+' only marks the value as approximate. Units are powers of 1024 and the
// suffix is optional (plain bytes). Empty or malformed input yields 0.
func ParseMemory(text string) int64 {
	clean := strings.ReplaceAll(strings.TrimSpace(text), "+", "")
	if clean == "" {
		return 0
	}

	number, rest := splitDigitsAndDots(clean)
	if number == "" {
		return 0
	}
	value := parseDottedNumber(number)

	switch len(rest) {
	case 0:
		return truncateToInt64(value)
	case 1:
		multiplier, ok := unitMultiplier(rest[0])
		if !ok {
			return 0
		}
		return truncateToInt64(value * multiplier)
	default:
		return 0
	}
}

// ParseRequestedMemory converts a ReqMem value such as "4G", "4000Mc" or "8Gn" to the total
// number of requested bytes. A 'c' suffix means per CPU and is multiplied by cpuCount, an 'n'
// suffix means per node and is multiplied by nodeCount; counts below 1 are treated as 1.
// The unit is mandatory. ok is false when the value cannot be read, which is distinct from a
// known request of zero bytes.
func ParseRequestedMemory(text string, cpuCount int64, nodeCount int64) (bytes int64, ok bool) {
	amount, mode, ok := parseRequestedMemorySpec(strings.TrimSpace(text))
	if !ok {
		return 0, false
	}

	switch mode {
	case PerCPU:
		return amount * max(cpuCount, 1), true
	case PerNode:
		return amount * max(nodeCount, 1), true
	default:
		return amount, true
	}
}

// parseRequestedMemorySpec splits "<number><unit>[c|n]" into bytes and mode.
func parseRequestedMemorySpec(spec string) (int64, RequestedMemoryMode, bool) {
	number, rest := splitDigitsAndDots(spec)
	if number == "" || len(rest) == 0 || len(rest) > 2 {
		return 0, PerJob, false
	}

	multiplier, ok := unitMultiplier(rest[0])
	if !ok {
		return 0, PerJob, false
	}

	mode := PerJob
	if len(rest) == 2 {
		switch rest[1] {
		case 'c', 'C':
			mode = PerCPU
		case 'n', 'N':
			mode = PerNode
		default:
			return 0, PerJob, false
		}
	}

	return truncateToInt64(parseDottedNumber(number) * multiplier), mode, true
}
