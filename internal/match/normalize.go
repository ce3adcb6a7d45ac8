package match

import (
	"strings"

	"golang.org/x/text/cases"
)

// StripDecorations removes a single bracketed prefix and a single bracketed
// suffix from a bone name and trims surrounding whitespace.
//
// Examples:
//   - "(L) Hand"          -> "Hand"
//   - "Hips (Suffix)"     -> "Hips"
//   - "(X) Chest (Y)"     -> "Chest"
//   - "(Everything)"      -> "(Everything)"
//
// A prefix is only dropped if its closing bracket is not the final character,
// and a suffix only if its opening bracket is not the first character, so a
// fully bracketed name is kept as-is.
func StripDecorations(s string) string {
	out := strings.TrimSpace(s)

	if strings.HasPrefix(out, "(") {
		end := strings.Index(out, ")")
		if end != -1 && end != len(out)-1 {
			out = strings.TrimSpace(out[end+1:])
		}
	}

	if strings.HasSuffix(out, ")") {
		start := strings.LastIndex(out, "(")
		if start != -1 && start != 0 {
			out = strings.TrimSpace(out[:start])
		}
	}

	return out
}

// NormalizeBoneName normalizes a bone name for fuzzy comparisons.
// The normalization pipeline:
// 1. Trim whitespace.
// 2. Strip one bracketed prefix and one bracketed suffix.
// 3. Case-fold.
func NormalizeBoneName(s string) string {
	// cases.Caser is stateful, so one is built per call.
	return cases.Fold().String(StripDecorations(s))
}

// SameBoneName reports whether two raw bone names normalize to the same value.
func SameBoneName(a, b string) bool {
	return NormalizeBoneName(a) == NormalizeBoneName(b)
}

// HasReservedSuffix reports whether the normalized name ends with the
// normalized suffix. Used to skip containers created by a previous run.
func HasReservedSuffix(name, suffix string) bool {
	if suffix == "" {
		return false
	}

	return strings.HasSuffix(NormalizeBoneName(name), cases.Fold().String(suffix))
}
