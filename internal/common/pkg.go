package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// PathSeparator separates node names in a scene path.
const PathSeparator = "/"

// JoinPath joins scene path segments, skipping empty ones.
// JoinPath("Armature", "", "Hips") returns "Armature/Hips".
func JoinPath(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, PathSeparator)
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, PathSeparator)
}

// BaseName returns the last segment of a scene path.
// Returns empty string if p is empty.
func BaseName(p string) string {
	if p == "" {
		return ""
	}

	return path.Base(p)
}

// IsUnderPath reports whether p equals ancestor or lies beneath it.
func IsUnderPath(p, ancestor string) bool {
	if ancestor == "" {
		return true
	}

	return p == ancestor || strings.HasPrefix(p, ancestor+PathSeparator)
}

// TrimPathPrefix returns the remainder of p below ancestor, without a leading separator.
func TrimPathPrefix(p, ancestor string) string {
	if ancestor == "" {
		return p
	}

	return strings.TrimPrefix(strings.TrimPrefix(p, ancestor), PathSeparator)
}
