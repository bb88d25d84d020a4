package normalizers

import (
	"strings"
)

const (
	gpuCountPrefix = "gres/gpu="
	gpuTypedPrefix = "gres/gpu:"
	tresMemPrefix  = "mem="
)

// ParseRequestedGPUCount finds the GPU request in a ReqTRES list. Untyped requests
// ("gres/gpu=2") are looked for first, then typed ones ("gres/gpu:a100:2"). Returns 0 when
// no GPU was requested.
func ParseRequestedGPUCount(text string) int64 {
	if text == "" {
		return 0
	}
	if n, ok := findUntypedGPUCount(text); ok {
		return n
	}
	if n, ok := findTypedGPUCount(text); ok {
		return n
	}
	return 0
}

func findUntypedGPUCount(text string) (int64, bool) {
	for rest := text; ; {
		idx := strings.Index(rest, gpuCountPrefix)
		if idx < 0 {
			return 0, false
		}
		rest = rest[idx+len(gpuCountPrefix):]
		if digits := leadingDigits(rest); digits != "" {
			return ParseInteger(digits), true
		}
	}
}

func findTypedGPUCount(text string) (int64, bool) {
	for rest := text; ; {
		idx := strings.Index(rest, gpuTypedPrefix)
		if idx < 0 {
			return 0, false
		}
		rest = rest[idx+len(gpuTypedPrefix):]

		typeEnd := 0
		for typeEnd < len(rest) && isGPUTypeChar(rest[typeEnd]) {
			typeEnd++
		}
		if typeEnd == 0 || typeEnd >= len(rest) || rest[typeEnd] != ':' {
			continue
		}
		if digits := leadingDigits(rest[typeEnd+1:]); digits != "" {
			return ParseInteger(digits), true
		}
	}
}

// ParseTRESMemory returns the bytes of the mem= entry of a TRES list such as
// "cpu=00:00:10,energy=0,mem=2G,vmem=3G", or 0 when there is none.
func ParseTRESMemory(text string) int64 {
	str := strings.TrimSpace(text)
	if str == "" {
		return 0
	}

	for _, token := range strings.Split(str, ",") {
		if !strings.HasPrefix(strings.TrimSpace(token), tresMemPrefix) {
			continue
		}
		_, value, _ := strings.Cut(token, "=")
		return ParseMemory(strings.TrimSpace(value))
	}
	return 0
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[:end]
}

func isGPUTypeChar(c byte) bool {
	return isDigit(c) || c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
