package diagnostic

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsOrderAndFilters(t *testing.T) {
	var d Diagnostics

	d.AddInfo("A", "", "first")
	d.AddWarning("B", "Hips", "second %d", 2)
	d.AddError("C", "Armature", "third")
	d.AddWarning("B", "Chest", "fourth")

	require.Equal(t, 4, d.Len())
	assert.Equal(t, "second 2", d.Entries[1].Message)
	assert.Equal(t, []any{2}, d.Entries[1].Args)

	assert.Len(t, d.Infos(), 1)
	assert.Len(t, d.Warnings(), 2)
	assert.Len(t, d.Errors(), 1)
	assert.Equal(t, "Hips", d.Warnings()[0].Path)
	assert.Equal(t, "Chest", d.Warnings()[1].Path)

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.True(t, d.HasCode("B"))
	assert.Equal(t, 2, d.Count("B"))
	assert.False(t, d.HasCode("Z"))
}

func TestDiagnosticsError(t *testing.T) {
	var d Diagnostics

	d.AddWarning("W", "", "just a warning")
	assert.NoError(t, d.Error())

	d.AddError("E1", "Armature", "no bones").WithSuggestions("Hips", "Pelvis")
	d.AddError("E2", "", "other")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"Armature: [E1] no bones (did you mean: Hips, Pelvis?); [E2] other",
		err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("A", "", "a")
	b.AddError("B", "", "b")
	a.Merge(b)

	require.Equal(t, 2, a.Len())
	assert.Equal(t, "A", a.Entries[0].Code)
	assert.Equal(t, "B", a.Entries[1].Code)
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())

	assert.Equal(t, slog.LevelError, DiagnosticError.Level())
	assert.Equal(t, slog.LevelWarn, DiagnosticWarning.Level())
	assert.Equal(t, slog.LevelInfo, DiagnosticInfo.Level())
}

func TestDiagnosticsLog(t *testing.T) {
	var d Diagnostics

	d.AddWarning("BonesNotMatching", "Armature", "bones do not match").WithSuggestions("Hips")
	d.AddInfo("Quiet", "", "info entry")

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	d.Log(context.Background(), logger)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "code=BonesNotMatching")
	assert.Contains(t, out, "path=Armature")
	assert.False(t, strings.Contains(out, "info entry"))

	d.Log(context.Background(), nil)
}
