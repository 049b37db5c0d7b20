package calendar

import (
	"strings"
)

// NormalizeVesselName canonicalizes a vessel name for comparison.
// Matching is case-insensitive and ignores surrounding whitespace.
func NormalizeVesselName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameVessel reports whether two vessel names identify the same vessel
func SameVessel(a, b string) bool {
	return NormalizeVesselName(a) == NormalizeVesselName(b)
}
