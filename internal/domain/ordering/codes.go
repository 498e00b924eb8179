package ordering

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	RequestCodeKind = "REQ"
	OrderCodeKind   = "ORD"

	codeSeqWidth = 5
)

// CodePrefix returns the per-year prefix, e.g. "REQ-2024-".
func CodePrefix(kind string, year int) string {
	return fmt.Sprintf("%s-%d-", kind, year)
}

// FormatCode renders a code with a zero-padded sequence, e.g. "REQ-2024-00007".
func FormatCode(kind string, year, seq int) string {
	return fmt.Sprintf("%s%0*d", CodePrefix(kind, year), codeSeqWidth, seq)
}

// ParseCodeSeq extracts the numeric suffix of code when it carries prefix.
func ParseCodeSeq(code, prefix string) (int, bool) {
	if !strings.HasPrefix(code, prefix) {
		return 0, false
	}
	suffix := code[len(prefix):]
	if suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxCodeSeq returns the highest sequence among codes carrying prefix, or 0.
func MaxCodeSeq(codes []string, prefix string) int {
	maxSeq := 0
	for _, c := range codes {
		if n, ok := ParseCodeSeq(strings.TrimSpace(c), prefix); ok && n > maxSeq {
			maxSeq = n
		}
	}
	return maxSeq
}

// NextCode scans existing codes for the year and returns max+1.
//
// Two callers reading the same codes get the same answer; persisted codes are
// allocated through a compare-and-swap sequence instead.
func NextCode(kind string, year int, existing []string) string {
	return FormatCode(kind, year, MaxCodeSeq(existing, CodePrefix(kind, year))+1)
}
