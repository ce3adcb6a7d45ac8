package match

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAliases(t *testing.T) {
	groups, err := ParseAliases([]byte(`{"mappings": [["Hips", "Pelvis"], ["Chest", "UpperBody"]]}`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Hips", "Pelvis"}, {"Chest", "UpperBody"}}, groups)

	_, err = ParseAliases([]byte(`{"mappings": [`))
	assert.Error(t, err)
}

func TestDefaultAliasTable(t *testing.T) {
	table := NewAliasTable()

	groups := table.Load()
	require.NotEmpty(t, groups)

	names := table.Match("pelvis")
	assert.Contains(t, names, "Hips")
	assert.Contains(t, names, "Pelvis")

	assert.Contains(t, table.Match("(Outfit) LeftUpperLeg"), "UpperLeg.L")
	assert.Nil(t, table.Match("Tail"))
}

func TestAliasTableMatchIsNormalized(t *testing.T) {
	table := NewAliasTable(WithAliasSource(func() ([]byte, error) {
		return []byte(`{"mappings": [["Hips", "Pelvis"]]}`), nil
	}))

	assert.Equal(t, []string{"Hips", "Pelvis"}, table.Match("HIPS"))
	assert.Equal(t, []string{"Hips", "Pelvis"}, table.Match("Pelvis (Clone)"))
}

func TestAliasTableMatchAcrossGroups(t *testing.T) {
	table := NewAliasTable(WithAliasSource(func() ([]byte, error) {
		return []byte(`{"mappings": [["Chest", "UpperBody"], ["UpperBody", "Torso", "Chest"]]}`), nil
	}))

	assert.Equal(t, []string{"Chest", "UpperBody", "Torso"}, table.Match("upperbody"))
}

func TestAliasTableLoadFailureDegrades(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	table := NewAliasTable(
		WithAliasSource(func() ([]byte, error) { return nil, errors.New("boom") }),
		WithAliasLogger(logger),
	)

	assert.Empty(t, table.Load())
	assert.Nil(t, table.Match("Hips"))
	assert.Contains(t, buf.String(), "boom")
}

func TestAliasTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mappings": [["Tail", "Tail_Root"]]}`), 0o644))

	table := NewAliasTable(WithAliasFile(path))
	assert.Equal(t, []string{"Tail", "Tail_Root"}, table.Match("tail_root"))

	missing := NewAliasTable(WithAliasFile(filepath.Join(t.TempDir(), "missing.json")))
	assert.Empty(t, missing.Load())
}

func TestAliasTableLoadsOnce(t *testing.T) {
	calls := 0
	table := NewAliasTable(WithAliasSource(func() ([]byte, error) {
		calls++
		return []byte(`{"mappings": [["Hips", "Pelvis"]]}`), nil
	}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			table.Match("Hips")
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, calls)
}
