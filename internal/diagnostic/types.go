package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"armature-dresser/internal/common"
)

// Diagnostics holds all diagnostic information from a planning run, in the
// order it was recorded.
type Diagnostics struct {
	Entries []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Args are the raw values the message was formatted from.
	Args []any
	// Path identifies which scene node this relates to (if any).
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Level maps the severity onto a slog level.
func (s DiagnosticSeverity) Level() slog.Level {
	switch s {
	case DiagnosticError:
		return slog.LevelError
	case DiagnosticWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Add appends a diagnostic and returns a pointer to it so callers can attach suggestions.
// The message is produced with fmt.Sprintf(format, args...).
func (d *Diagnostics) Add(severity DiagnosticSeverity, code, path, format string, args ...any) *Diagnostic {
	d.Entries = append(d.Entries, Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Args:     args,
		Path:     path,
	})

	return &d.Entries[len(d.Entries)-1]
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, path, format string, args ...any) *Diagnostic {
	return d.Add(DiagnosticError, code, path, format, args...)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, path, format string, args ...any) *Diagnostic {
	return d.Add(DiagnosticWarning, code, path, format, args...)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, path, format string, args ...any) *Diagnostic {
	return d.Add(DiagnosticInfo, code, path, format, args...)
}

// WithSuggestions sets the suggestions on the diagnostic.
func (d *Diagnostic) WithSuggestions(suggestions ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, suggestions...)
	return d
}

// Filter returns the entries of the given severity, in recording order.
func (d *Diagnostics) Filter(severity DiagnosticSeverity) []Diagnostic {
	var out []Diagnostic

	for _, e := range d.Entries {
		if e.Severity == severity {
			out = append(out, e)
		}
	}

	return out
}

// Errors returns all error diagnostics.
func (d *Diagnostics) Errors() []Diagnostic { return d.Filter(DiagnosticError) }

// Warnings returns all warning diagnostics.
func (d *Diagnostics) Warnings() []Diagnostic { return d.Filter(DiagnosticWarning) }

// Infos returns all info diagnostics.
func (d *Diagnostics) Infos() []Diagnostic { return d.Filter(DiagnosticInfo) }

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, e := range d.Entries {
		if e.Severity == DiagnosticError {
			return true
		}
	}

	return false
}

// HasCode returns true if any diagnostic carries the given code.
func (d *Diagnostics) HasCode(code string) bool {
	return d.Count(code) > 0
}

// Count returns how many diagnostics carry the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, e := range d.Entries {
		if e.Code == code {
			n++
		}
	}

	return n
}

// Len returns the total number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Entries)
}

// Merge appends all entries of another Diagnostics instance, preserving their order.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Entries = append(d.Entries, other.Entries...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors() {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every entry to the logger at a level matching its severity.
func (d *Diagnostics) Log(ctx context.Context, logger *slog.Logger) {
	if logger == nil {
		return
	}

	for _, e := range d.Entries {
		attrs := []any{"code", e.Code}
		if e.Path != "" {
			attrs = append(attrs, "path", e.Path)
		}

		if len(e.Suggestions) > 0 {
			attrs = append(attrs, "suggestions", e.Suggestions)
		}

		logger.Log(ctx, e.Severity.Level(), e.Message, attrs...)
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Path != "" {
		msg = d.Path + ": " + msg
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return msg
}
