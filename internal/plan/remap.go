package plan

import (
	"slices"

	"github.com/google/uuid"

	"armature-dresser/internal/common"
	"armature-dresser/internal/mapping"
	"armature-dresser/internal/match"
	"armature-dresser/internal/scene"
)

// Layout controls where and under which name moved bones end up.
type Layout struct {
	// GroupBones places moved bones under a "<bone>_DT" container of the
	// avatar bone, and ignored ones under "<bone>_DBExcluded".
	GroupBones bool
	Prefix     string
	Suffix     string
	// PreventDuplicateNames appends "@<uuid>" to a moved bone whose new name
	// is already taken in its destination.
	PreventDuplicateNames bool
}

// LayoutFrom returns the layout configured in an armatureMapping module.
func LayoutFrom(cfg mapping.ArmatureMappingConfig) Layout {
	return Layout{
		GroupBones:            cfg.GroupBones,
		Prefix:                cfg.Prefix,
		Suffix:                cfg.Suffix,
		PreventDuplicateNames: cfg.PreventDuplicateNames,
	}
}

// Relocation records that the node at From ends up at To. Paths are relative
// to the avatar root.
type Relocation struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// IgnoreAddition asks the avatar dynamics component of ComponentType on Owner
// to stop simulating Path, a node an IgnoreTransform directive placed inside
// its chain. Paths are relative to the avatar root.
type IgnoreAddition struct {
	Owner         string `yaml:"owner"`
	ComponentType string `yaml:"componentType"`
	Path          string `yaml:"path"`
}

// RemapperOption configures a PathRemapper.
type RemapperOption func(*PathRemapper)

// WithUniqueToken sets the generator of the duplicate name token.
func WithUniqueToken(fn func() string) RemapperOption {
	return func(r *PathRemapper) {
		r.token = fn
	}
}

// WithAvatarDynamics sets the avatar dynamics checked for IgnoreAdditions.
// Descriptor paths must be relative to the avatar root.
func WithAvatarDynamics(dyns []scene.Descriptor) RemapperOption {
	return func(r *PathRemapper) {
		r.avatarDyns = dyns
	}
}

// PathRemapper translates avatar-relative paths of the dressed scene from
// their original location to the one they have once the plan is applied.
// It is a pure function of the directives and layout it was built from.
type PathRemapper struct {
	relocations []Relocation
	ignores     []IgnoreAddition
	avatarDyns  []scene.Descriptor
	token       func() string
}

// NewPathRemapper builds a remapper from the final directives. wearableBase
// is the path of the wearable root below the avatar root; directive source
// paths are relative to it. avatar is used to detect duplicate names and may
// be nil.
func NewPathRemapper(avatar *scene.Tree, wearableBase string, directives []mapping.MappingDirective, layout Layout, opts ...RemapperOption) *PathRemapper {
	r := &PathRemapper{
		token: func() string { return uuid.NewString() },
	}

	for _, opt := range opts {
		opt(r)
	}

	// Names placed so far per destination, seeded lazily from the avatar.
	taken := map[string]map[string]struct{}{}

	namesIn := func(dest string) map[string]struct{} {
		names, ok := taken[dest]
		if ok {
			return names
		}

		names = map[string]struct{}{}

		if avatar != nil {
			if id, found := avatar.Find(avatar.Root(), dest); found {
				for _, n := range avatar.ChildNames(id) {
					names[n] = struct{}{}
				}
			}
		}

		taken[dest] = names

		return names
	}

	for _, d := range directives {
		var dest string

		switch d.Type {
		case mapping.MoveToBone:
			dest = d.TargetPath
			if layout.GroupBones {
				dest = common.JoinPath(d.TargetPath, common.BaseName(d.TargetPath)+DefaultContainerSuffix)
			}
		case mapping.IgnoreTransform:
			dest = d.TargetPath
			if layout.GroupBones {
				dest = common.JoinPath(d.TargetPath, common.BaseName(d.TargetPath)+ExcludedContainerSuffix)
			}
		default:
			continue
		}

		names := namesIn(dest)

		name := layout.Prefix + match.StripDecorations(common.BaseName(d.SourcePath)) + layout.Suffix
		if _, dup := names[name]; dup && layout.PreventDuplicateNames {
			name += "@" + r.token()
		}

		names[name] = struct{}{}

		to := common.JoinPath(dest, name)
		r.relocations = append(r.relocations, Relocation{
			From: common.JoinPath(wearableBase, d.SourcePath),
			To:   to,
		})

		if d.Type == mapping.IgnoreTransform {
			if layout.GroupBones {
				r.addIgnores(dest)
			} else {
				r.addIgnores(to)
			}
		}
	}

	return r
}

// addIgnores records an IgnoreAddition for every avatar chain that contains
// excluded and does not already skip it.
func (r *PathRemapper) addIgnores(excluded string) {
	for _, d := range r.avatarDyns {
		if excluded == d.RootPath || !common.IsUnderPath(excluded, d.RootPath) {
			continue
		}

		if d.Ignores(common.TrimPathPrefix(excluded, d.RootPath)) {
			continue
		}

		add := IgnoreAddition{Owner: d.OwnerPath, ComponentType: d.ComponentType, Path: excluded}
		if !slices.Contains(r.ignores, add) {
			r.ignores = append(r.ignores, add)
		}
	}
}

// Relocations returns the relocated nodes in directive order.
func (r *PathRemapper) Relocations() []Relocation {
	out := make([]Relocation, len(r.relocations))
	copy(out, r.relocations)

	return out
}

// IgnoreAdditions returns the ignore entries the avatar dynamics need so that
// nodes relocated by IgnoreTransform stay unsimulated.
func (r *PathRemapper) IgnoreAdditions() []IgnoreAddition {
	return slices.Clone(r.ignores)
}

// Remap returns the path the node at raw has after the plan is applied. The
// deepest relocated ancestor decides; paths under no relocated node are
// returned unchanged.
func (r *PathRemapper) Remap(raw string) string {
	best := -1

	for i, rel := range r.relocations {
		if !common.IsUnderPath(raw, rel.From) {
			continue
		}

		if best == -1 || len(rel.From) > len(r.relocations[best].From) {
			best = i
		}
	}

	if best == -1 {
		return raw
	}

	rel := r.relocations[best]

	return common.JoinPath(rel.To, common.TrimPathPrefix(raw, rel.From))
}
