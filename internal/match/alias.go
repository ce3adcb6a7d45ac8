package match

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed bone_name_aliases.json
var defaultAliases []byte

// aliasFile is the on-disk shape of the alias resource:
//
//	{"mappings": [["Hips", "Pelvis"], ["Chest", "UpperBody"]]}
type aliasFile struct {
	Mappings [][]string `yaml:"mappings"`
}

// AliasTable is a lazily loaded list of bone-name synonym groups.
//
// The table is loaded on first use and never reloaded. A load failure is
// logged and leaves the table empty, which degrades matching to exact names.
// It is safe for concurrent use.
type AliasTable struct {
	once   sync.Once
	source func() ([]byte, error)
	logger *slog.Logger

	groups [][]string
	index  map[string][]int
}

// AliasOption configures an AliasTable.
type AliasOption func(*AliasTable)

// WithAliasSource sets the function that produces the raw alias resource.
func WithAliasSource(source func() ([]byte, error)) AliasOption {
	return func(t *AliasTable) {
		t.source = source
	}
}

// WithAliasFile reads the alias resource from a file on first use.
func WithAliasFile(path string) AliasOption {
	return WithAliasSource(func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read alias file %s: %w", path, err)
		}

		return data, nil
	})
}

// WithAliasLogger sets the sink for load failures.
func WithAliasLogger(logger *slog.Logger) AliasOption {
	return func(t *AliasTable) {
		t.logger = logger
	}
}

// NewAliasTable creates an alias table backed by the built-in alias list
// unless another source is given.
func NewAliasTable(opts ...AliasOption) *AliasTable {
	t := &AliasTable{
		source: func() ([]byte, error) { return defaultAliases, nil },
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ParseAliases parses an alias resource into synonym groups.
// The resource is JSON, which yaml.v3 reads as a YAML subset.
func ParseAliases(data []byte) ([][]string, error) {
	var af aliasFile

	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("failed to parse bone name aliases: %w", err)
	}

	return af.Mappings, nil
}

// Load loads the alias groups once and returns them.
func (t *AliasTable) Load() [][]string {
	t.once.Do(t.load)
	return t.groups
}

func (t *AliasTable) load() {
	t.index = make(map[string][]int)

	data, err := t.source()
	if err != nil {
		t.logger.Error("could not read bone name aliases, falling back to exact matching", "error", err)
		return
	}

	groups, err := ParseAliases(data)
	if err != nil {
		t.logger.Error("could not parse bone name aliases, falling back to exact matching", "error", err)
		return
	}

	t.groups = groups

	for i, group := range groups {
		for _, name := range group {
			key := NormalizeBoneName(name)
			if n := len(t.index[key]); n > 0 && t.index[key][n-1] == i {
				continue
			}

			t.index[key] = append(t.index[key], i)
		}
	}

	t.logger.Debug("loaded bone name aliases", "groups", len(groups))
}

// Match returns every name from the alias groups that contain the normalized
// child name, in group order. Returns nil if no group contains it.
func (t *AliasTable) Match(childName string) []string {
	t.Load()

	idxs := t.index[NormalizeBoneName(childName)]
	if len(idxs) == 0 {
		return nil
	}

	var out []string

	seen := make(map[string]struct{})

	for _, i := range idxs {
		for _, name := range t.groups[i] {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	return out
}
