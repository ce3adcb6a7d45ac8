package scene

import (
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/mapstructure"

	"armature-dresser/internal/common"
)

//go:generate go tool stringer -type=DynamicsKind -trimprefix=Kind -output=dynamicskind_string.go

// DynamicsKind identifies the physics component family.
type DynamicsKind int

const (
	KindDynamicBone DynamicsKind = iota
	KindPhysBone
)

// Component type names recognized by the default providers.
const (
	PhysBoneType    = "VRCPhysBone"
	DynamicBoneType = "DynamicBone"
)

// Descriptor describes one physics component and the chain it drives.
type Descriptor struct {
	Kind DynamicsKind
	// ComponentType is the raw component type, used for enable curves.
	ComponentType string
	// Owner is the node carrying the component.
	Owner NodeID
	// Root is the first node of the driven chain.
	Root NodeID
	// OwnerPath and RootPath are relative to the scanned subtree root.
	OwnerPath string
	RootPath  string
	// IgnoreSubpaths are glob patterns relative to Root excluded from the chain.
	IgnoreSubpaths []string
}

// Ignores reports whether subpath (relative to Root) is excluded from the chain.
// A pattern also excludes everything below a matched node.
func (d *Descriptor) Ignores(subpath string) bool {
	for _, pattern := range d.IgnoreSubpaths {
		if pattern == "" {
			continue
		}

		if common.IsUnderPath(subpath, pattern) {
			return true
		}

		ok, err := doublestar.Match(pattern, subpath)
		if err == nil && ok {
			return true
		}

		// A glob matching an ancestor also covers the descendants.
		for dir := path.Dir(subpath); dir != "." && dir != "/"; dir = path.Dir(dir) {
			if ok, err := doublestar.Match(pattern, dir); err == nil && ok {
				return true
			}
		}
	}

	return false
}

// DynamicsProvider recognizes one kind of physics component.
type DynamicsProvider interface {
	// TryDescribe returns a descriptor if c is a component this provider handles.
	TryDescribe(t *Tree, owner NodeID, c Component) (Descriptor, bool)
}

type physBoneProvider struct{}

type physBoneProperties struct {
	RootTransform    string   `mapstructure:"rootTransform"`
	IgnoreTransforms []string `mapstructure:"ignoreTransforms"`
}

// PhysBoneProvider describes VRCPhysBone components.
func PhysBoneProvider() DynamicsProvider {
	return physBoneProvider{}
}

func (physBoneProvider) TryDescribe(t *Tree, owner NodeID, c Component) (Descriptor, bool) {
	if c.Type != PhysBoneType {
		return Descriptor{}, false
	}

	var props physBoneProperties
	if err := mapstructure.Decode(c.Properties, &props); err != nil {
		return Descriptor{}, false
	}

	return describe(t, owner, c.Type, KindPhysBone, props.RootTransform, props.IgnoreTransforms)
}

type dynamicBoneProvider struct{}

type dynamicBoneProperties struct {
	Root       string   `mapstructure:"root"`
	Exclusions []string `mapstructure:"exclusions"`
}

// DynamicBoneProvider describes DynamicBone components.
func DynamicBoneProvider() DynamicsProvider {
	return dynamicBoneProvider{}
}

func (dynamicBoneProvider) TryDescribe(t *Tree, owner NodeID, c Component) (Descriptor, bool) {
	if c.Type != DynamicBoneType {
		return Descriptor{}, false
	}

	var props dynamicBoneProperties
	if err := mapstructure.Decode(c.Properties, &props); err != nil {
		return Descriptor{}, false
	}

	return describe(t, owner, c.Type, KindDynamicBone, props.Root, props.Exclusions)
}

// describe resolves rootPath relative to owner, or to the tree root when it
// starts with a separator. An empty rootPath means the owner itself.
func describe(t *Tree, owner NodeID, typ string, kind DynamicsKind, rootPath string, ignores []string) (Descriptor, bool) {
	from := owner
	if strings.HasPrefix(rootPath, common.PathSeparator) {
		from = t.Root()
	}

	root, ok := t.Find(from, rootPath)
	if !ok {
		return Descriptor{}, false
	}

	return Descriptor{
		Kind:           kind,
		ComponentType:  typ,
		Owner:          owner,
		Root:           root,
		IgnoreSubpaths: ignores,
	}, true
}

// DefaultProviders returns the providers for the supported physics components.
func DefaultProviders() []DynamicsProvider {
	return []DynamicsProvider{PhysBoneProvider(), DynamicBoneProvider()}
}

// Scanner discovers physics components using a set of providers.
type Scanner struct {
	providers []DynamicsProvider
	logger    *slog.Logger
}

// NewScanner creates a scanner. Without providers, DefaultProviders is used.
func NewScanner(logger *slog.Logger, providers ...DynamicsProvider) *Scanner {
	if len(providers) == 0 {
		providers = DefaultProviders()
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Scanner{providers: providers, logger: logger}
}

// Scan lists the physics components under root in pre-order. With
// excludeNestedWearables, subtrees of nested wearable roots are skipped.
func (s *Scanner) Scan(t *Tree, root NodeID, excludeNestedWearables bool) []Descriptor {
	var out []Descriptor

	t.Walk(root, func(id NodeID) bool {
		n := t.Node(id)
		if excludeNestedWearables && id != root && n.Wearable {
			return false
		}

		for _, c := range n.Components {
			for _, p := range s.providers {
				d, ok := p.TryDescribe(t, id, c)
				if !ok {
					continue
				}

				d.OwnerPath = t.Path(id, root)
				d.RootPath = t.Path(d.Root, root)
				out = append(out, d)

				s.logger.Debug("found dynamics",
					slog.String("kind", d.Kind.String()),
					slog.String("owner", d.OwnerPath),
					slog.String("root", d.RootPath))

				break
			}
		}

		return true
	})

	return out
}

// FindWithRoot returns the first descriptor whose chain starts at root.
func FindWithRoot(list []Descriptor, root NodeID) *Descriptor {
	for i := range list {
		if list[i].Root == root {
			return &list[i]
		}
	}

	return nil
}
